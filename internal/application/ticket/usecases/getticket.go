package usecases

import (
	"context"

	"datadesk/internal/domain/ticket"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// GetTicketCommand represents the input for fetching a single ticket
type GetTicketCommand struct {
	TicketID string
}

// GetTicketResult carries the ticket together with its audit trail
type GetTicketResult struct {
	Ticket  TicketDTO
	History []HistoryDTO
}

// GetTicketUseCase handles fetching a ticket with its history
type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	if len(cmd.TicketID) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "ticket_id")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	histories, err := uc.historyRepo.ListByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket history",
			"ticket_id", cmd.TicketID,
			"error", err,
		)
		return nil, err
	}

	historyDTOs := make([]HistoryDTO, 0, len(histories))
	for _, h := range histories {
		historyDTOs = append(historyDTOs, toHistoryDTO(h))
	}

	return &GetTicketResult{
		Ticket:  toTicketDTO(t),
		History: historyDTOs,
	}, nil
}
