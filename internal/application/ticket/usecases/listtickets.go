package usecases

import (
	"context"

	"datadesk/internal/domain/ticket"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

// ListTicketsCommand represents the input for listing tickets
type ListTicketsCommand struct {
	Scope    authorization.Scope
	Status   string
	Priority string
	AssetID  string
}

// ListTicketsResult represents the output of listing tickets
type ListTicketsResult struct {
	Tickets []TicketDTO
	Total   int
}

// ListTicketsUseCase handles scoped ticket listings
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	tickets, err := uc.ticketRepo.List(ctx, cmd.Scope, ticket.ListFilter{
		Status:   cmd.Status,
		Priority: cmd.Priority,
		AssetID:  cmd.AssetID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets",
			"company_id", cmd.Scope.CompanyID,
			"error", err,
		)
		return nil, err
	}

	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, toTicketDTO(t))
	}

	return &ListTicketsResult{
		Tickets: dtos,
		Total:   len(dtos),
	}, nil
}
