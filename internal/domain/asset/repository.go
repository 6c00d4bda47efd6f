package asset

import (
	"context"

	"datadesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	FindByID(ctx context.Context, id string) (*Asset, error)
	List(ctx context.Context, scope authorization.Scope) ([]*Asset, error)
	Delete(ctx context.Context, id string) error

	// FindBySerialOrCode backs the public asset search endpoint.
	FindBySerialOrCode(ctx context.Context, key string) (*Asset, error)
}
