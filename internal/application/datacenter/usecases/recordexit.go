package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/datacenter"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// RecordExitCommand represents the input for stamping a visitor's departure.
// A zero ExitTime means "now".
type RecordExitCommand struct {
	LogID    string
	ExitTime time.Time
}

// RecordExitResult represents the output of stamping a departure
type RecordExitResult struct {
	Log LogDTO
}

// RecordExitUseCase handles visitor checkout
type RecordExitUseCase struct {
	logRepo datacenter.Repository
	logger  logger.Interface
}

func NewRecordExitUseCase(logRepo datacenter.Repository, logger logger.Interface) *RecordExitUseCase {
	return &RecordExitUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *RecordExitUseCase) Execute(ctx context.Context, cmd RecordExitCommand) (*RecordExitResult, error) {
	if len(cmd.LogID) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "log_id")
	}

	l, err := uc.logRepo.FindByID(ctx, cmd.LogID)
	if err != nil {
		return nil, err
	}

	if err := l.RecordExit(cmd.ExitTime); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.logRepo.Update(ctx, l); err != nil {
		uc.logger.Errorw("failed to record data center exit", "log_id", cmd.LogID, "error", err)
		return nil, err
	}

	uc.logger.Infow("data center exit recorded", "log_id", l.ID())

	return &RecordExitResult{Log: toLogDTO(l)}, nil
}
