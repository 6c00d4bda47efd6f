package datacenter

import (
	"context"

	"datadesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, l *Log) error
	Update(ctx context.Context, l *Log) error
	FindByID(ctx context.Context, id string) (*Log, error)
	List(ctx context.Context, scope authorization.Scope) ([]*Log, error)
	Delete(ctx context.Context, id string) error
}
