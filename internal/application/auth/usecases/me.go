package usecases

import (
	"context"

	"datadesk/internal/domain/user"
	"datadesk/internal/shared/logger"
)

// GetCurrentUserCommand represents the input for resolving the caller
type GetCurrentUserCommand struct {
	UserID uint
}

// GetCurrentUserResult represents the output of resolving the caller
type GetCurrentUserResult struct {
	User UserDTO
}

// GetCurrentUserUseCase resolves the authenticated user's profile
type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, cmd GetCurrentUserCommand) (*GetCurrentUserResult, error) {
	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	return &GetCurrentUserResult{User: toUserDTO(u)}, nil
}
