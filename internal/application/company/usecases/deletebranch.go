package usecases

import (
	"context"

	"datadesk/internal/domain/company"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// DeleteBranchCommand represents the input for deleting a branch
type DeleteBranchCommand struct {
	BranchID string
	ActorID  uint
}

// DeleteBranchUseCase handles branch deletion
type DeleteBranchUseCase struct {
	branchRepo company.BranchRepository
	logger     logger.Interface
}

func NewDeleteBranchUseCase(branchRepo company.BranchRepository, logger logger.Interface) *DeleteBranchUseCase {
	return &DeleteBranchUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

func (uc *DeleteBranchUseCase) Execute(ctx context.Context, cmd DeleteBranchCommand) error {
	if len(cmd.BranchID) == 0 {
		return apperrors.NewFieldValidationError("missing required fields", "branch_id")
	}

	if err := uc.branchRepo.Delete(ctx, cmd.BranchID); err != nil {
		uc.logger.Errorw("failed to delete branch", "branch_id", cmd.BranchID, "error", err)
		return err
	}

	uc.logger.Infow("branch deleted", "branch_id", cmd.BranchID, "deleted_by", cmd.ActorID)

	return nil
}
