package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/user"
	"datadesk/internal/shared/authorization"
	apperrors "datadesk/internal/shared/errors"
)

func TestGetUserUseCase_Execute(t *testing.T) {
	now := time.Now()
	stored, err := user.ReconstructUser(
		7, "alice", "Alice", "alice@example.com", "hashed",
		authorization.RoleAdmin, "C001", "B001", now, now,
	)
	require.NoError(t, err)

	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			require.Equal(t, uint(7), id)
			return stored, nil
		},
	}

	uc := NewGetUserUseCase(userRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), GetUserCommand{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, uint(7), result.User.ID)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "C001", result.User.CompanyID)
}

func TestGetUserUseCase_Execute_MissingID(t *testing.T) {
	uc := NewGetUserUseCase(&mockUserRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), GetUserCommand{})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestGetUserUseCase_Execute_NotFound(t *testing.T) {
	uc := NewGetUserUseCase(&mockUserRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), GetUserCommand{UserID: 99})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}
