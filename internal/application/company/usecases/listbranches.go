package usecases

import (
	"context"

	"datadesk/internal/domain/company"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// ListBranchesCommand represents the input for listing a company's branches
type ListBranchesCommand struct {
	CompanyID string
}

// ListBranchesResult represents the output of listing branches
type ListBranchesResult struct {
	Branches []BranchDTO
	Total    int
}

// ListBranchesUseCase handles branch listings
type ListBranchesUseCase struct {
	branchRepo company.BranchRepository
	logger     logger.Interface
}

func NewListBranchesUseCase(branchRepo company.BranchRepository, logger logger.Interface) *ListBranchesUseCase {
	return &ListBranchesUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

func (uc *ListBranchesUseCase) Execute(ctx context.Context, cmd ListBranchesCommand) (*ListBranchesResult, error) {
	if len(cmd.CompanyID) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "company_id")
	}

	branches, err := uc.branchRepo.ListByCompanyID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to list branches", "company_id", cmd.CompanyID, "error", err)
		return nil, err
	}

	dtos := make([]BranchDTO, 0, len(branches))
	for _, b := range branches {
		dtos = append(dtos, toBranchDTO(b))
	}

	return &ListBranchesResult{
		Branches: dtos,
		Total:    len(dtos),
	}, nil
}
