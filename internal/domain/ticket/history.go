package ticket

import (
	"fmt"
	"time"
)

// History is one append-only entry in a ticket's audit trail. Entries are
// never updated or deleted.
type History struct {
	id          uint
	ticketID    string
	action      string
	description string
	userID      uint
	createdAt   time.Time
}

func NewHistory(ticketID, action, description string, userID uint) (*History, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &History{
		ticketID:    ticketID,
		action:      action,
		description: description,
		userID:      userID,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructHistory(
	id uint,
	ticketID string,
	action string,
	description string,
	userID uint,
	createdAt time.Time,
) *History {
	return &History{
		id:          id,
		ticketID:    ticketID,
		action:      action,
		description: description,
		userID:      userID,
		createdAt:   createdAt,
	}
}

func (h *History) ID() uint {
	return h.id
}

func (h *History) TicketID() string {
	return h.ticketID
}

func (h *History) Action() string {
	return h.action
}

func (h *History) Description() string {
	return h.description
}

func (h *History) UserID() uint {
	return h.userID
}

func (h *History) CreatedAt() time.Time {
	return h.createdAt
}

func (h *History) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history ID is already set")
	}
	h.id = id
	return nil
}
