package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/company"
	"datadesk/internal/domain/systemlog"
	"datadesk/internal/domain/user"
	"datadesk/internal/shared/authorization"
	apperrors "datadesk/internal/shared/errors"
)

func testUser(t *testing.T, role authorization.UserRole) *user.User {
	t.Helper()

	u, err := user.ReconstructUser(
		7, "somchai", "Somchai P.", "somchai@example.com", "$2a$10$hash",
		role, "C001", "B001", time.Now(), time.Now(),
	)
	require.NoError(t, err)

	return u
}

func testCompany(t *testing.T, expiry *time.Time) *company.Company {
	t.Helper()

	c, err := company.ReconstructCompany(
		"C001", "Acme Co", nil, nil, nil, nil, expiry, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	return c
}

func TestLoginUseCase_Execute(t *testing.T) {
	u := testUser(t, authorization.RoleAdmin)

	userRepo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			require.Equal(t, "somchai", username)
			return u, nil
		},
	}
	companyRepo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*company.Company, error) {
			return testCompany(t, nil), nil
		},
	}
	logRepo := &mockSystemLogRepository{}

	uc := NewLoginUseCase(userRepo, companyRepo, logRepo, &mockPasswordVerifier{}, &mockTokenGenerator{}, noopLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Username:  "somchai",
		Password:  "secret",
		IPAddress: "10.0.0.1",
		UserAgent: "curl/8.0",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, uint(7), result.User.ID)
	assert.Equal(t, "admin", result.User.Role)

	require.Len(t, logRepo.appended, 1)
	entry := logRepo.appended[0]
	assert.Equal(t, systemlog.ActionLogin, entry.Action())
	assert.Equal(t, "auth", entry.Module())
	assert.Equal(t, "10.0.0.1", entry.IPAddress())
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	u := testUser(t, authorization.RoleAdmin)

	userRepo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
	}
	verifier := &mockPasswordVerifier{
		VerifyFunc: func(password, hash string) error {
			return errors.New("password verification failed")
		},
	}
	logRepo := &mockSystemLogRepository{}

	uc := NewLoginUseCase(userRepo, &mockCompanyRepository{}, logRepo, verifier, &mockTokenGenerator{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "somchai", Password: "wrong"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Empty(t, logRepo.appended, "failed logins are not audited as LOGIN")
}

func TestLoginUseCase_Execute_UnknownUser(t *testing.T) {
	uc := NewLoginUseCase(
		&mockUserRepository{}, &mockCompanyRepository{}, &mockSystemLogRepository{},
		&mockPasswordVerifier{}, &mockTokenGenerator{}, noopLogger{},
	)

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "nobody", Password: "secret"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type, "unknown user and bad password are indistinguishable")
}

func TestLoginUseCase_Execute_ExpiredLicense(t *testing.T) {
	u := testUser(t, authorization.RoleAdmin)
	expired := time.Now().Add(-24 * time.Hour)

	userRepo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
	}
	companyRepo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*company.Company, error) {
			return testCompany(t, &expired), nil
		},
	}

	uc := NewLoginUseCase(userRepo, companyRepo, &mockSystemLogRepository{}, &mockPasswordVerifier{}, &mockTokenGenerator{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "somchai", Password: "secret"})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestLoginUseCase_Execute_SuperAdminSkipsLicenseCheck(t *testing.T) {
	u := testUser(t, authorization.RoleSuperAdmin)

	userRepo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return u, nil
		},
	}
	companyRepo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*company.Company, error) {
			t.Fatal("super admin login must not load the company")
			return nil, nil
		},
	}

	uc := NewLoginUseCase(userRepo, companyRepo, &mockSystemLogRepository{}, &mockPasswordVerifier{}, &mockTokenGenerator{}, noopLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "somchai", Password: "secret"})
	require.NoError(t, err)
}
