package usecases

import (
	"context"
	"strings"

	"datadesk/internal/domain/ticket"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// TrackTicketsCommand represents the input for the public tracking lookup
type TrackTicketsCommand struct {
	Key string
}

// TrackTicketsResult represents the output of the public tracking lookup
type TrackTicketsResult struct {
	Tickets []TicketDTO
}

// TrackTicketsUseCase resolves tickets for the unauthenticated tracking
// endpoint. The key may be an asset serial number, a custom device serial
// number, or a ticket id in any of its written forms.
type TrackTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewTrackTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *TrackTicketsUseCase {
	return &TrackTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *TrackTicketsUseCase) Execute(ctx context.Context, cmd TrackTicketsCommand) (*TrackTicketsResult, error) {
	key := strings.TrimSpace(cmd.Key)
	if len(key) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "serial_number")
	}

	tickets, err := uc.ticketRepo.FindForTracking(ctx, key)
	if err != nil {
		uc.logger.Errorw("failed to resolve tickets for tracking",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	if len(tickets) == 0 {
		return nil, apperrors.NewNotFoundError("no tickets found for the given serial number or ticket id")
	}

	dtos := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, toTicketDTO(t))
	}

	return &TrackTicketsResult{Tickets: dtos}, nil
}
