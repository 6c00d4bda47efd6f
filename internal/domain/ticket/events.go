package ticket

import (
	"time"

	"datadesk/internal/domain/shared/events"
)

const (
	EventTicketCreated       = "ticket.created"
	EventTicketStatusChanged = "ticket.status_changed"
	EventTicketAssigned      = "ticket.assigned"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID    string
	Title       string
	Description string
	Priority    string
	CompanyID   string
	BranchID    string
	CreatedBy   uint
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.ID(),
			EventType:   EventTicketCreated,
			OccurredAt:  time.Now(),
		},
		TicketID:    t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority(),
		CompanyID:   t.CompanyID(),
		BranchID:    t.BranchID(),
		CreatedBy:   t.CreatedBy(),
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID  string
	Title     string
	OldStatus Status
	NewStatus Status
	CreatedBy uint
	ChangedBy uint
}

func NewTicketStatusChangedEvent(t *Ticket, oldStatus Status, changedBy uint) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.ID(),
			EventType:   EventTicketStatusChanged,
			OccurredAt:  time.Now(),
		},
		TicketID:  t.ID(),
		Title:     t.Title(),
		OldStatus: oldStatus,
		NewStatus: t.Status(),
		CreatedBy: t.CreatedBy(),
		ChangedBy: changedBy,
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   string
	Title      string
	AssigneeID uint
	AssignedBy uint
}

func NewTicketAssignedEvent(t *Ticket, assigneeID, assignedBy uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: t.ID(),
			EventType:   EventTicketAssigned,
			OccurredAt:  time.Now(),
		},
		TicketID:   t.ID(),
		Title:      t.Title(),
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
	}
}
