package usecases

import (
	"context"

	"datadesk/internal/domain/company"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// UpdateBranchCommand represents the input for updating a branch. Changing
// the ticket prefix only affects tickets created afterwards; existing ticket
// ids keep their numbering.
type UpdateBranchCommand struct {
	BranchID        string
	Name            string
	TicketPrefix    *string
	TechnicianEmail *string
}

// UpdateBranchResult represents the output of updating a branch
type UpdateBranchResult struct {
	Branch BranchDTO
}

// UpdateBranchUseCase handles branch updates
type UpdateBranchUseCase struct {
	branchRepo company.BranchRepository
	logger     logger.Interface
}

func NewUpdateBranchUseCase(branchRepo company.BranchRepository, logger logger.Interface) *UpdateBranchUseCase {
	return &UpdateBranchUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

func (uc *UpdateBranchUseCase) Execute(ctx context.Context, cmd UpdateBranchCommand) (*UpdateBranchResult, error) {
	var missing []string
	if len(cmd.BranchID) == 0 {
		missing = append(missing, "branch_id")
	}
	if len(cmd.Name) == 0 {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	b, err := uc.branchRepo.FindByID(ctx, cmd.BranchID)
	if err != nil {
		return nil, err
	}

	if err := b.Update(cmd.Name, cmd.TicketPrefix, cmd.TechnicianEmail); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.branchRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update branch", "branch_id", cmd.BranchID, "error", err)
		return nil, err
	}

	uc.logger.Infow("branch updated", "branch_id", b.ID())

	return &UpdateBranchResult{Branch: toBranchDTO(b)}, nil
}
