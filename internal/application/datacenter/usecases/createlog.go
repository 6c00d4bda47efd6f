package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/datacenter"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// CreateLogCommand represents the input for recording a data center entry
type CreateLogCommand struct {
	VisitorName      string
	VisitorCompany   *string
	ContactNumber    string
	EntryTime        time.Time
	Purpose          string
	EquipmentBrought *string
	AuthorizedBy     string
	CompanyID        string
	BranchID         string
	CreatedBy        uint
	Notes            *string
}

// CreateLogResult represents the output of recording an entry
type CreateLogResult struct {
	Log LogDTO
}

// CreateLogUseCase handles data center entry registration
type CreateLogUseCase struct {
	logRepo datacenter.Repository
	logger  logger.Interface
}

func NewCreateLogUseCase(logRepo datacenter.Repository, logger logger.Interface) *CreateLogUseCase {
	return &CreateLogUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *CreateLogUseCase) Execute(ctx context.Context, cmd CreateLogCommand) (*CreateLogResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	// A missing entry time means "the visitor is walking in now"
	entryTime := cmd.EntryTime
	if entryTime.IsZero() {
		entryTime = time.Now()
	}

	l, err := datacenter.NewLog(
		cmd.VisitorName,
		cmd.VisitorCompany,
		cmd.ContactNumber,
		entryTime,
		cmd.Purpose,
		cmd.EquipmentBrought,
		cmd.AuthorizedBy,
		cmd.CompanyID,
		cmd.BranchID,
		cmd.CreatedBy,
		cmd.Notes,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.logRepo.Save(ctx, l); err != nil {
		uc.logger.Errorw("failed to create data center log",
			"visitor_name", cmd.VisitorName,
			"company_id", cmd.CompanyID,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("data center entry recorded",
		"log_id", l.ID(),
		"visitor_name", l.VisitorName(),
		"company_id", l.CompanyID(),
	)

	return &CreateLogResult{Log: toLogDTO(l)}, nil
}

func (uc *CreateLogUseCase) validateCommand(cmd CreateLogCommand) error {
	var missing []string

	if len(cmd.VisitorName) == 0 {
		missing = append(missing, "visitor_name")
	}
	if len(cmd.ContactNumber) == 0 {
		missing = append(missing, "contact_number")
	}
	if len(cmd.Purpose) == 0 {
		missing = append(missing, "purpose")
	}
	if len(cmd.AuthorizedBy) == 0 {
		missing = append(missing, "authorized_by")
	}
	if cmd.CreatedBy == 0 {
		missing = append(missing, "created_by")
	}

	if len(missing) > 0 {
		return apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	return nil
}
