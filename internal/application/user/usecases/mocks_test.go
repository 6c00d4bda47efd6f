package usecases

import (
	"context"

	"datadesk/internal/domain/user"
	"datadesk/internal/shared/authorization"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc     func(ctx context.Context, u *user.User) error
	UpdateFunc   func(ctx context.Context, u *user.User) error
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
	ListFunc     func(ctx context.Context, scope authorization.Scope) ([]*user.User, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) List(ctx context.Context, scope authorization.Scope) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) FindSuperAdmins(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindStaffByBranch(ctx context.Context, companyID, branchID string) ([]*user.User, error) {
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
