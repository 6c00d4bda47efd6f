package usecases

import (
	"context"

	"datadesk/internal/domain/user"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

// ListUsersCommand represents the input for listing users
type ListUsersCommand struct {
	Scope authorization.Scope
}

// ListUsersResult represents the output of listing users
type ListUsersResult struct {
	Users []UserDTO
	Total int
}

// ListUsersUseCase handles scoped user listings
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	users, err := uc.userRepo.List(ctx, cmd.Scope)
	if err != nil {
		uc.logger.Errorw("failed to list users", "company_id", cmd.Scope.CompanyID, "error", err)
		return nil, err
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}

	return &ListUsersResult{
		Users: dtos,
		Total: len(dtos),
	}, nil
}
