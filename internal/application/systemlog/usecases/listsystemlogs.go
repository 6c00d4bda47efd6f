package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/systemlog"
	"datadesk/internal/shared/logger"
)

const defaultLimit = 200

// EntryDTO is the wire representation of one audit log entry.
type EntryDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Action      string    `json:"action"`
	Module      string    `json:"module"`
	Description string    `json:"description"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListSystemLogsCommand represents the input for listing audit entries
type ListSystemLogsCommand struct {
	Limit int
}

// ListSystemLogsResult represents the output of listing audit entries
type ListSystemLogsResult struct {
	Entries []EntryDTO
}

// ListSystemLogsUseCase handles the super admin audit log view
type ListSystemLogsUseCase struct {
	logRepo systemlog.Repository
	logger  logger.Interface
}

func NewListSystemLogsUseCase(logRepo systemlog.Repository, logger logger.Interface) *ListSystemLogsUseCase {
	return &ListSystemLogsUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *ListSystemLogsUseCase) Execute(ctx context.Context, cmd ListSystemLogsCommand) (*ListSystemLogsResult, error) {
	limit := cmd.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	entries, err := uc.logRepo.List(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list system logs", "error", err)
		return nil, err
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, EntryDTO{
			ID:          e.ID(),
			UserID:      e.UserID(),
			UserName:    e.UserName(),
			CompanyID:   e.CompanyID(),
			CompanyName: e.CompanyName(),
			Action:      e.Action(),
			Module:      e.Module(),
			Description: e.Description(),
			IPAddress:   e.IPAddress(),
			UserAgent:   e.UserAgent(),
			CreatedAt:   e.CreatedAt(),
		})
	}

	return &ListSystemLogsResult{Entries: dtos}, nil
}
