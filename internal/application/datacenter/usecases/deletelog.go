package usecases

import (
	"context"

	"datadesk/internal/domain/datacenter"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// DeleteLogCommand represents the input for deleting a visit log
type DeleteLogCommand struct {
	LogID   string
	ActorID uint
}

// DeleteLogUseCase handles visit log deletion
type DeleteLogUseCase struct {
	logRepo datacenter.Repository
	logger  logger.Interface
}

func NewDeleteLogUseCase(logRepo datacenter.Repository, logger logger.Interface) *DeleteLogUseCase {
	return &DeleteLogUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *DeleteLogUseCase) Execute(ctx context.Context, cmd DeleteLogCommand) error {
	if len(cmd.LogID) == 0 {
		return apperrors.NewFieldValidationError("missing required fields", "log_id")
	}

	if err := uc.logRepo.Delete(ctx, cmd.LogID); err != nil {
		uc.logger.Errorw("failed to delete data center log", "log_id", cmd.LogID, "error", err)
		return err
	}

	uc.logger.Infow("data center log deleted", "log_id", cmd.LogID, "deleted_by", cmd.ActorID)

	return nil
}
