package usecases

import (
	"context"

	"datadesk/internal/domain/shared/events"
	"datadesk/internal/domain/ticket"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc        func(ctx context.Context, id string) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, scope authorization.Scope, filter ticket.ListFilter) ([]*ticket.Ticket, error)
	DeleteFunc          func(ctx context.Context, id string) error
	FindForTrackingFunc func(ctx context.Context, key string) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID("T001")
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, scope authorization.Scope, filter ticket.ListFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) FindForTracking(ctx context.Context, key string) ([]*ticket.Ticket, error) {
	if m.FindForTrackingFunc != nil {
		return m.FindForTrackingFunc(ctx, key)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	AppendFunc         func(ctx context.Context, h *ticket.History) error
	ListByTicketIDFunc func(ctx context.Context, ticketID string) ([]*ticket.History, error)

	appended []*ticket.History
}

func (m *mockHistoryRepository) Append(ctx context.Context, h *ticket.History) error {
	m.appended = append(m.appended, h)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, h)
	}
	return nil
}

func (m *mockHistoryRepository) ListByTicketID(ctx context.Context, ticketID string) ([]*ticket.History, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

// mockTxManager runs the function inline without a database.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockEventPublisher struct {
	PublishFunc func(event events.DomainEvent) error

	published []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		if err := m.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
