package usecases

import (
	"context"

	"datadesk/internal/domain/company"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// GetCompanyCommand represents the input for fetching a company
type GetCompanyCommand struct {
	CompanyID string
}

// GetCompanyResult carries the company with its branches
type GetCompanyResult struct {
	Company  CompanyDTO
	Branches []BranchDTO
}

// GetCompanyUseCase handles fetching a single company
type GetCompanyUseCase struct {
	companyRepo company.Repository
	branchRepo  company.BranchRepository
	logger      logger.Interface
}

func NewGetCompanyUseCase(
	companyRepo company.Repository,
	branchRepo company.BranchRepository,
	logger logger.Interface,
) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		branchRepo:  branchRepo,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, cmd GetCompanyCommand) (*GetCompanyResult, error) {
	if len(cmd.CompanyID) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "company_id")
	}

	c, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	branches, err := uc.branchRepo.ListByCompanyID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company branches", "company_id", cmd.CompanyID, "error", err)
		return nil, err
	}

	branchDTOs := make([]BranchDTO, 0, len(branches))
	for _, b := range branches {
		branchDTOs = append(branchDTOs, toBranchDTO(b))
	}

	return &GetCompanyResult{
		Company:  toCompanyDTO(c),
		Branches: branchDTOs,
	}, nil
}
