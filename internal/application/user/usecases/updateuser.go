package usecases

import (
	"context"

	"datadesk/internal/domain/user"
	"datadesk/internal/shared/authorization"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// UpdateUserCommand represents the input for updating a user. Optional
// fields left nil are untouched; a new password is re-hashed.
type UpdateUserCommand struct {
	UserID    uint
	Name      string
	Email     string
	Role      *string
	CompanyID *string
	BranchID  *string
	Password  *string
}

// UpdateUserResult represents the output of updating a user
type UpdateUserResult struct {
	User UserDTO
}

// UpdateUserUseCase handles user updates
type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error) {
	var missing []string
	if cmd.UserID == 0 {
		missing = append(missing, "user_id")
	}
	if len(cmd.Name) == 0 {
		missing = append(missing, "name")
	}
	if len(cmd.Email) == 0 {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(cmd.Name, cmd.Email); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.Role != nil {
		if err := u.ChangeRole(authorization.UserRole(*cmd.Role)); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.CompanyID != nil {
		branchID := u.BranchID()
		if cmd.BranchID != nil {
			branchID = *cmd.BranchID
		}
		if err := u.MoveTo(*cmd.CompanyID, branchID); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	} else if cmd.BranchID != nil {
		if err := u.MoveTo(u.CompanyID(), *cmd.BranchID); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil && len(*cmd.Password) > 0 {
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "user_id", cmd.UserID, "error", err)
			return nil, apperrors.NewInternalError("failed to hash password")
		}
		if err := u.ChangePassword(hash); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", u.ID())

	return &UpdateUserResult{User: toUserDTO(u)}, nil
}
