package usecases

import (
	"context"

	"datadesk/internal/domain/company"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// CreateBranchCommand represents the input for creating a branch
type CreateBranchCommand struct {
	CompanyID       string
	Name            string
	TicketPrefix    *string
	TechnicianEmail *string
}

// CreateBranchResult represents the output of creating a branch
type CreateBranchResult struct {
	Branch BranchDTO
}

// CreateBranchUseCase handles branch creation
type CreateBranchUseCase struct {
	companyRepo company.Repository
	branchRepo  company.BranchRepository
	logger      logger.Interface
}

func NewCreateBranchUseCase(
	companyRepo company.Repository,
	branchRepo company.BranchRepository,
	logger logger.Interface,
) *CreateBranchUseCase {
	return &CreateBranchUseCase{
		companyRepo: companyRepo,
		branchRepo:  branchRepo,
		logger:      logger,
	}
}

func (uc *CreateBranchUseCase) Execute(ctx context.Context, cmd CreateBranchCommand) (*CreateBranchResult, error) {
	var missing []string
	if len(cmd.CompanyID) == 0 {
		missing = append(missing, "company_id")
	}
	if len(cmd.Name) == 0 {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	// The parent company must exist before a branch can hang off it
	if _, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID); err != nil {
		return nil, err
	}

	b, err := company.NewBranch(cmd.Name, cmd.CompanyID, cmd.TicketPrefix, cmd.TechnicianEmail)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.branchRepo.Save(ctx, b); err != nil {
		uc.logger.Errorw("failed to create branch", "company_id", cmd.CompanyID, "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("branch created", "branch_id", b.ID(), "company_id", b.CompanyID())

	return &CreateBranchResult{Branch: toBranchDTO(b)}, nil
}
