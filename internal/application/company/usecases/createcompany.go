package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/company"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// CreateCompanyCommand represents the input for creating a company
type CreateCompanyCommand struct {
	Name              string
	Logo              *string
	LineToken         *string
	TelegramToken     *string
	NotificationEmail *string
	ExpiryDate        *time.Time
}

// CreateCompanyResult represents the output of creating a company
type CreateCompanyResult struct {
	Company CompanyDTO
}

// CreateCompanyUseCase handles company creation
type CreateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*CreateCompanyResult, error) {
	if len(cmd.Name) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "name")
	}

	c, err := company.NewCompany(cmd.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := c.UpdateProfile(cmd.Name, cmd.Logo, cmd.LineToken, cmd.TelegramToken, cmd.NotificationEmail); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.ExpiryDate != nil {
		c.SetExpiryDate(cmd.ExpiryDate)
	}

	if err := uc.companyRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to create company", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("company created", "company_id", c.ID(), "name", c.Name())

	return &CreateCompanyResult{Company: toCompanyDTO(c)}, nil
}
