package company

import (
	"context"

	"datadesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	FindByID(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context, scope authorization.Scope) ([]*Company, error)
	Delete(ctx context.Context, id string) error
}

type BranchRepository interface {
	Save(ctx context.Context, b *Branch) error
	Update(ctx context.Context, b *Branch) error
	FindByID(ctx context.Context, id string) (*Branch, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]*Branch, error)
	Delete(ctx context.Context, id string) error
}
