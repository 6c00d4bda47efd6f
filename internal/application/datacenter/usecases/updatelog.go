package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/datacenter"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// UpdateLogCommand represents the input for correcting a visit log
type UpdateLogCommand struct {
	LogID            string
	VisitorName      string
	VisitorCompany   *string
	ContactNumber    string
	EntryTime        time.Time
	Purpose          string
	EquipmentBrought *string
	AuthorizedBy     string
	Notes            *string
}

// UpdateLogResult represents the output of correcting a visit log
type UpdateLogResult struct {
	Log LogDTO
}

// UpdateLogUseCase handles data center log corrections
type UpdateLogUseCase struct {
	logRepo datacenter.Repository
	logger  logger.Interface
}

func NewUpdateLogUseCase(logRepo datacenter.Repository, logger logger.Interface) *UpdateLogUseCase {
	return &UpdateLogUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *UpdateLogUseCase) Execute(ctx context.Context, cmd UpdateLogCommand) (*UpdateLogResult, error) {
	var missing []string
	if len(cmd.LogID) == 0 {
		missing = append(missing, "log_id")
	}
	if len(cmd.VisitorName) == 0 {
		missing = append(missing, "visitor_name")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	l, err := uc.logRepo.FindByID(ctx, cmd.LogID)
	if err != nil {
		return nil, err
	}

	if err := l.Update(
		cmd.VisitorName,
		cmd.VisitorCompany,
		cmd.ContactNumber,
		cmd.EntryTime,
		cmd.Purpose,
		cmd.EquipmentBrought,
		cmd.AuthorizedBy,
		cmd.Notes,
	); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.logRepo.Update(ctx, l); err != nil {
		uc.logger.Errorw("failed to update data center log", "log_id", cmd.LogID, "error", err)
		return nil, err
	}

	return &UpdateLogResult{Log: toLogDTO(l)}, nil
}
