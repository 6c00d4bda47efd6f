package usecases

import (
	"context"

	"datadesk/internal/domain/company"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// DeleteCompanyCommand represents the input for deleting a company
type DeleteCompanyCommand struct {
	CompanyID string
	ActorID   uint
}

// DeleteCompanyUseCase handles company deletion
type DeleteCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, cmd DeleteCompanyCommand) error {
	if len(cmd.CompanyID) == 0 {
		return apperrors.NewFieldValidationError("missing required fields", "company_id")
	}

	if err := uc.companyRepo.Delete(ctx, cmd.CompanyID); err != nil {
		uc.logger.Errorw("failed to delete company", "company_id", cmd.CompanyID, "error", err)
		return err
	}

	uc.logger.Infow("company deleted", "company_id", cmd.CompanyID, "deleted_by", cmd.ActorID)

	return nil
}
