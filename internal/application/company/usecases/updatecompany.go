package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/company"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// UpdateCompanyCommand represents the input for updating a company
type UpdateCompanyCommand struct {
	CompanyID         string
	Name              string
	Logo              *string
	LineToken         *string
	TelegramToken     *string
	NotificationEmail *string
	ExpiryDate        *time.Time
	ClearExpiryDate   bool
}

// UpdateCompanyResult represents the output of updating a company
type UpdateCompanyResult struct {
	Company CompanyDTO
}

// UpdateCompanyUseCase handles company updates
type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*UpdateCompanyResult, error) {
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

	c, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateProfile(cmd.Name, cmd.Logo, cmd.LineToken, cmd.TelegramToken, cmd.NotificationEmail); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.ClearExpiryDate {
		c.SetExpiryDate(nil)
	} else if cmd.ExpiryDate != nil {
		c.SetExpiryDate(cmd.ExpiryDate)
	}

	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update company", "company_id", cmd.CompanyID, "error", err)
		return nil, err
	}

	uc.logger.Infow("company updated", "company_id", c.ID())

	return &UpdateCompanyResult{Company: toCompanyDTO(c)}, nil
}
