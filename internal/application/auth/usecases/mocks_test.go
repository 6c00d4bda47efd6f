package usecases

import (
	"context"

	"datadesk/internal/domain/company"
	"datadesk/internal/domain/systemlog"
	"datadesk/internal/domain/user"
	"datadesk/internal/shared/authorization"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

type mockUserRepository struct {
	FindByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) List(ctx context.Context, scope authorization.Scope) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockUserRepository) FindSuperAdmins(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindStaffByBranch(ctx context.Context, companyID, branchID string) ([]*user.User, error) {
	return nil, nil
}

type mockCompanyRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*company.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error   { return nil }
func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error { return nil }

func (m *mockCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, apperrors.NewNotFoundError("company not found")
}

func (m *mockCompanyRepository) List(ctx context.Context, scope authorization.Scope) ([]*company.Company, error) {
	return nil, nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id string) error { return nil }

type mockSystemLogRepository struct {
	AppendFunc func(ctx context.Context, e *systemlog.Entry) error

	appended []*systemlog.Entry
}

func (m *mockSystemLogRepository) Append(ctx context.Context, e *systemlog.Entry) error {
	m.appended = append(m.appended, e)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return nil
}

func (m *mockSystemLogRepository) List(ctx context.Context, limit int) ([]*systemlog.Entry, error) {
	return nil, nil
}

type mockPasswordVerifier struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordVerifier) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenGenerator struct {
	GenerateFunc func(userID uint, username string, role authorization.UserRole, companyID, branchID string) (string, error)
}

func (m *mockTokenGenerator) Generate(userID uint, username string, role authorization.UserRole, companyID, branchID string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, role, companyID, branchID)
	}
	return "signed-token", nil
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
