package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/ticket"
	apperrors "datadesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	cmd := CreateTicketCommand{
		Title:       "Broken screen",
		Description: "The monitor flickers and goes black",
		CreatedBy:   7,
		CompanyID:   "C001",
		BranchID:    "B001",
	}

	ticketRepo := &mockTicketRepository{}
	historyRepo := &mockHistoryRepository{}
	publisher := &mockEventPublisher{}

	uc := NewCreateTicketUseCase(ticketRepo, historyRepo, &mockTxManager{}, publisher, noopLogger{})

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "T001", result.Ticket.ID)
	assert.Equal(t, "open", result.Ticket.Status)
	assert.Equal(t, "medium", result.Ticket.Priority, "priority should default to medium")

	require.Len(t, historyRepo.appended, 1)
	assert.Equal(t, "Ticket created", historyRepo.appended[0].Description())
	assert.Equal(t, uint(7), historyRepo.appended[0].UserID())

	require.Len(t, publisher.published, 1)
	assert.Equal(t, ticket.EventTicketCreated, publisher.published[0].GetEventType())
}

func TestCreateTicketUseCase_Execute_MissingFields(t *testing.T) {
	uc := NewCreateTicketUseCase(
		&mockTicketRepository{}, &mockHistoryRepository{}, &mockTxManager{}, &mockEventPublisher{}, noopLogger{},
	)

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		CreatedBy: 7,
		CompanyID: "C001",
		BranchID:  "B001",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.ElementsMatch(t, []string{"title", "description"}, appErr.Fields)
}

func TestCreateTicketUseCase_Execute_SaveFails(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.New("database unavailable")
		},
	}
	historyRepo := &mockHistoryRepository{}
	publisher := &mockEventPublisher{}

	uc := NewCreateTicketUseCase(ticketRepo, historyRepo, &mockTxManager{}, publisher, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Broken screen",
		Description: "The monitor flickers",
		CreatedBy:   7,
		CompanyID:   "C001",
		BranchID:    "B001",
	})

	require.Error(t, err)
	assert.Empty(t, publisher.published, "no event should be published when the transaction fails")
}
