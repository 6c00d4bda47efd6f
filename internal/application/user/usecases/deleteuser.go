package usecases

import (
	"context"

	"datadesk/internal/domain/user"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// DeleteUserCommand represents the input for deleting a user
type DeleteUserCommand struct {
	UserID  uint
	ActorID uint
}

// DeleteUserUseCase handles user deletion
type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewFieldValidationError("missing required fields", "user_id")
	}

	if cmd.UserID == cmd.ActorID {
		return apperrors.NewValidationError("you cannot delete your own account")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "deleted_by", cmd.ActorID)

	return nil
}
