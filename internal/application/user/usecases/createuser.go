package usecases

import (
	"context"

	"datadesk/internal/domain/user"
	"datadesk/internal/shared/authorization"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// CreateUserCommand represents the input for creating a user
type CreateUserCommand struct {
	Username  string
	Name      string
	Email     string
	Password  string
	Role      string
	CompanyID string
	BranchID  string
}

// CreateUserResult represents the output of creating a user
type CreateUserResult struct {
	User UserDTO
}

// CreateUserUseCase handles user creation
type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "username", cmd.Username, "error", err)
		return nil, apperrors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(
		cmd.Username,
		cmd.Name,
		cmd.Email,
		hash,
		authorization.ParseUserRole(cmd.Role),
		cmd.CompanyID,
		cmd.BranchID,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created",
		"user_id", u.ID(),
		"username", u.Username(),
		"role", u.Role().String(),
		"company_id", u.CompanyID(),
	)

	return &CreateUserResult{User: toUserDTO(u)}, nil
}

func (uc *CreateUserUseCase) validateCommand(cmd CreateUserCommand) error {
	var missing []string

	if len(cmd.Username) == 0 {
		missing = append(missing, "username")
	}
	if len(cmd.Name) == 0 {
		missing = append(missing, "name")
	}
	if len(cmd.Email) == 0 {
		missing = append(missing, "email")
	}
	if len(cmd.Password) == 0 {
		missing = append(missing, "password")
	}
	if len(cmd.CompanyID) == 0 {
		missing = append(missing, "company_id")
	}

	if len(missing) > 0 {
		return apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	return nil
}
