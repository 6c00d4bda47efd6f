package user

import (
	"context"

	"datadesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, scope authorization.Scope) ([]*User, error)
	Delete(ctx context.Context, id uint) error

	// FindSuperAdmins and FindStaffByBranch feed new-ticket notification
	// recipient resolution.
	FindSuperAdmins(ctx context.Context) ([]*User, error)
	FindStaffByBranch(ctx context.Context, companyID, branchID string) ([]*User, error)
}
