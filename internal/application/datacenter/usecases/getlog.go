package usecases

import (
	"context"

	"datadesk/internal/domain/datacenter"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// GetLogCommand represents the input for fetching a single visit log
type GetLogCommand struct {
	LogID string
}

// GetLogResult represents the output of fetching a visit log
type GetLogResult struct {
	Log LogDTO
}

// GetLogUseCase handles fetching a visit log by ID
type GetLogUseCase struct {
	logRepo datacenter.Repository
	logger  logger.Interface
}

func NewGetLogUseCase(logRepo datacenter.Repository, logger logger.Interface) *GetLogUseCase {
	return &GetLogUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *GetLogUseCase) Execute(ctx context.Context, cmd GetLogCommand) (*GetLogResult, error) {
	if len(cmd.LogID) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "log_id")
	}

	l, err := uc.logRepo.FindByID(ctx, cmd.LogID)
	if err != nil {
		return nil, err
	}

	return &GetLogResult{
		Log: toLogDTO(l),
	}, nil
}
