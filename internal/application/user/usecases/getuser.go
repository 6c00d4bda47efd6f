package usecases

import (
	"context"

	"datadesk/internal/domain/user"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// GetUserCommand represents the input for fetching a single user
type GetUserCommand struct {
	UserID uint
}

// GetUserResult represents the output of fetching a user
type GetUserResult struct {
	User UserDTO
}

// GetUserUseCase handles fetching a user by ID
type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd GetUserCommand) (*GetUserResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "user_id")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	return &GetUserResult{
		User: toUserDTO(u),
	}, nil
}
