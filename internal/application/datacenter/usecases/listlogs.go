package usecases

import (
	"context"

	"datadesk/internal/domain/datacenter"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

// ListLogsCommand represents the input for listing visit logs
type ListLogsCommand struct {
	Scope authorization.Scope
}

// ListLogsResult represents the output of listing visit logs
type ListLogsResult struct {
	Logs  []LogDTO
	Total int
}

// ListLogsUseCase handles scoped visit log listings
type ListLogsUseCase struct {
	logRepo datacenter.Repository
	logger  logger.Interface
}

func NewListLogsUseCase(logRepo datacenter.Repository, logger logger.Interface) *ListLogsUseCase {
	return &ListLogsUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *ListLogsUseCase) Execute(ctx context.Context, cmd ListLogsCommand) (*ListLogsResult, error) {
	logs, err := uc.logRepo.List(ctx, cmd.Scope)
	if err != nil {
		uc.logger.Errorw("failed to list data center logs", "company_id", cmd.Scope.CompanyID, "error", err)
		return nil, err
	}

	dtos := make([]LogDTO, 0, len(logs))
	for _, l := range logs {
		dtos = append(dtos, toLogDTO(l))
	}

	return &ListLogsResult{
		Logs:  dtos,
		Total: len(dtos),
	}, nil
}
