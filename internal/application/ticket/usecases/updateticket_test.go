package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/ticket"
	apperrors "datadesk/internal/shared/errors"
)

func existingTicket(t *testing.T, id string) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket("Broken screen", "The monitor flickers", "high", 7, "C001", "B001")
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))

	return tk
}

func newUpdateFixture(t *testing.T, existing *ticket.Ticket) (*UpdateTicketUseCase, *mockHistoryRepository, *mockEventPublisher) {
	t.Helper()

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			if id != existing.ID() {
				return nil, apperrors.NewNotFoundError("ticket not found")
			}
			return existing, nil
		},
	}
	historyRepo := &mockHistoryRepository{}
	publisher := &mockEventPublisher{}

	uc := NewUpdateTicketUseCase(ticketRepo, historyRepo, &mockTxManager{}, publisher, noopLogger{})

	return uc, historyRepo, publisher
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestUpdateTicketUseCase_Execute_StatusChange(t *testing.T) {
	existing := existingTicket(t, "T001")
	uc, historyRepo, publisher := newUpdateFixture(t, existing)

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: "T001",
		ActorID:  9,
		Status:   strPtr("in_progress"),
	})
	require.NoError(t, err)

	assert.Equal(t, "in_progress", result.Ticket.Status)
	require.NotNil(t, result.Ticket.ApprovedBy)
	assert.Equal(t, uint(9), *result.Ticket.ApprovedBy)

	require.Len(t, historyRepo.appended, 1, "an effective status change records exactly one history entry")
	assert.Equal(t, "In progress", historyRepo.appended[0].Description())
	assert.Equal(t, uint(9), historyRepo.appended[0].UserID())

	require.Len(t, publisher.published, 1)
	assert.Equal(t, ticket.EventTicketStatusChanged, publisher.published[0].GetEventType())

	evt, ok := publisher.published[0].(ticket.TicketStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, ticket.StatusOpen, evt.OldStatus)
	assert.Equal(t, ticket.StatusInProgress, evt.NewStatus)
}

func TestUpdateTicketUseCase_Execute_Close(t *testing.T) {
	existing := existingTicket(t, "T001")
	uc, _, _ := newUpdateFixture(t, existing)

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: "T001",
		ActorID:  9,
		Status:   strPtr("closed"),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Ticket.ClosedAt, "closing must stamp closed_at")
	require.NotNil(t, result.Ticket.ClosedBy, "closing must stamp closed_by")
	assert.Equal(t, uint(9), *result.Ticket.ClosedBy)
}

func TestUpdateTicketUseCase_Execute_SameStatusNoHistory(t *testing.T) {
	existing := existingTicket(t, "T001")
	uc, historyRepo, publisher := newUpdateFixture(t, existing)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: "T001",
		ActorID:  9,
		Status:   strPtr("open"),
	})
	require.NoError(t, err)

	assert.Empty(t, historyRepo.appended, "unchanged status must not record history")
	assert.Empty(t, publisher.published, "unchanged status must not publish an event")
}

func TestUpdateTicketUseCase_Execute_ReopenAfterClose(t *testing.T) {
	existing := existingTicket(t, "T001")
	_, err := existing.ChangeStatus(ticket.StatusClosed, 9)
	require.NoError(t, err)

	uc, historyRepo, _ := newUpdateFixture(t, existing)

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: "T001",
		ActorID:  9,
		Status:   strPtr("open"),
	})
	require.NoError(t, err)

	assert.Equal(t, "open", result.Ticket.Status, "any status transition is permitted")
	require.Len(t, historyRepo.appended, 1)
	assert.Equal(t, "Opened", historyRepo.appended[0].Description())
}

func TestUpdateTicketUseCase_Execute_Assignment(t *testing.T) {
	existing := existingTicket(t, "T001")
	uc, historyRepo, publisher := newUpdateFixture(t, existing)

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   "T001",
		ActorID:    9,
		AssignedTo: uintPtr(12),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Ticket.AssignedTo)
	assert.Equal(t, uint(12), *result.Ticket.AssignedTo)

	assert.Empty(t, historyRepo.appended, "assignment changes leave no history entry")

	require.Len(t, publisher.published, 1)
	assert.Equal(t, ticket.EventTicketAssigned, publisher.published[0].GetEventType())
}

func TestUpdateTicketUseCase_Execute_SameAssigneeNoEvent(t *testing.T) {
	existing := existingTicket(t, "T001")
	_, err := existing.AssignTo(12)
	require.NoError(t, err)

	uc, _, publisher := newUpdateFixture(t, existing)

	_, err = uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   "T001",
		ActorID:    9,
		AssignedTo: uintPtr(12),
	})
	require.NoError(t, err)

	assert.Empty(t, publisher.published, "assigning the same user again is a no-op")
}

func TestUpdateTicketUseCase_Execute_StatusAndAssignmentTogether(t *testing.T) {
	existing := existingTicket(t, "T001")
	uc, historyRepo, publisher := newUpdateFixture(t, existing)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   "T001",
		ActorID:    9,
		Status:     strPtr("in_progress"),
		AssignedTo: uintPtr(12),
	})
	require.NoError(t, err)

	require.Len(t, historyRepo.appended, 1)
	require.Len(t, publisher.published, 2)
	assert.Equal(t, ticket.EventTicketStatusChanged, publisher.published[0].GetEventType())
	assert.Equal(t, ticket.EventTicketAssigned, publisher.published[1].GetEventType())
}

func TestUpdateTicketUseCase_Execute_InvalidStatus(t *testing.T) {
	existing := existingTicket(t, "T001")
	uc, _, _ := newUpdateFixture(t, existing)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: "T001",
		ActorID:  9,
		Status:   strPtr("resolved"),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	existing := existingTicket(t, "T001")
	uc, _, _ := newUpdateFixture(t, existing)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID: "T999",
		ActorID:  9,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
