package ticket

import (
	"context"

	"datadesk/internal/shared/authorization"
)

// ListFilter narrows ticket listings. Zero values mean no filtering.
type ListFilter struct {
	Status   string
	Priority string
	AssetID  string
}

// Repository persists tickets. Save assigns the sequential identifier from
// the branch's ticket namespace and retries on collision.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context, scope authorization.Scope, filter ListFilter) ([]*Ticket, error)
	Delete(ctx context.Context, id string) error

	// FindForTracking resolves tickets for the public tracking endpoint:
	// by linked asset serial number, by custom device serial number, or by
	// ticket id (exact, then dash-stripped, then prefix match).
	FindForTracking(ctx context.Context, key string) ([]*Ticket, error)
}

// HistoryRepository is the append-only audit trail store.
type HistoryRepository interface {
	Append(ctx context.Context, h *History) error
	ListByTicketID(ctx context.Context, ticketID string) ([]*History, error)
}
