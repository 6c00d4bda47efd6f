package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/ticket"
	apperrors "datadesk/internal/shared/errors"
)

func TestTrackTicketsUseCase_Execute(t *testing.T) {
	existing := existingTicket(t, "BKK-001")

	var gotKey string
	ticketRepo := &mockTicketRepository{
		FindForTrackingFunc: func(ctx context.Context, key string) ([]*ticket.Ticket, error) {
			gotKey = key
			return []*ticket.Ticket{existing}, nil
		},
	}

	uc := NewTrackTicketsUseCase(ticketRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), TrackTicketsCommand{Key: "  SN-12345 "})
	require.NoError(t, err)

	assert.Equal(t, "SN-12345", gotKey, "lookup key should be trimmed")
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, "BKK-001", result.Tickets[0].ID)
}

func TestTrackTicketsUseCase_Execute_EmptyKey(t *testing.T) {
	uc := NewTrackTicketsUseCase(&mockTicketRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), TrackTicketsCommand{Key: "   "})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestTrackTicketsUseCase_Execute_NoMatches(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindForTrackingFunc: func(ctx context.Context, key string) ([]*ticket.Ticket, error) {
			return nil, nil
		},
	}

	uc := NewTrackTicketsUseCase(ticketRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), TrackTicketsCommand{Key: "unknown"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
