package usecases

import (
	"context"

	"datadesk/internal/domain/company"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

// ListCompaniesCommand represents the input for listing companies
type ListCompaniesCommand struct {
	Scope authorization.Scope
}

// ListCompaniesResult represents the output of listing companies
type ListCompaniesResult struct {
	Companies []CompanyDTO
	Total     int
}

// ListCompaniesUseCase handles scoped company listings. Non super admins
// only ever see their own company.
type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, cmd ListCompaniesCommand) (*ListCompaniesResult, error) {
	companies, err := uc.companyRepo.List(ctx, cmd.Scope)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, err
	}

	dtos := make([]CompanyDTO, 0, len(companies))
	for _, c := range companies {
		dtos = append(dtos, toCompanyDTO(c))
	}

	return &ListCompaniesResult{
		Companies: dtos,
		Total:     len(dtos),
	}, nil
}
