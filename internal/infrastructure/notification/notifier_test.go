package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datadesk/internal/domain/company"
	"datadesk/internal/domain/setting"
	"datadesk/internal/domain/shared/events"
	"datadesk/internal/domain/ticket"
	"datadesk/internal/domain/user"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

type mockUserRepository struct {
	FindByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	FindSuperAdminsFunc   func(ctx context.Context) ([]*user.User, error)
	FindStaffByBranchFunc func(ctx context.Context, companyID, branchID string) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("not found")
}
func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, errors.New("not found")
}
func (m *mockUserRepository) List(ctx context.Context, scope authorization.Scope) ([]*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockUserRepository) FindSuperAdmins(ctx context.Context) ([]*user.User, error) {
	if m.FindSuperAdminsFunc != nil {
		return m.FindSuperAdminsFunc(ctx)
	}
	return nil, nil
}
func (m *mockUserRepository) FindStaffByBranch(ctx context.Context, companyID, branchID string) ([]*user.User, error) {
	if m.FindStaffByBranchFunc != nil {
		return m.FindStaffByBranchFunc(ctx, companyID, branchID)
	}
	return nil, nil
}

type mockBranchRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*company.Branch, error)
}

func (m *mockBranchRepository) Save(ctx context.Context, b *company.Branch) error   { return nil }
func (m *mockBranchRepository) Update(ctx context.Context, b *company.Branch) error { return nil }
func (m *mockBranchRepository) FindByID(ctx context.Context, id string) (*company.Branch, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("not found")
}
func (m *mockBranchRepository) ListByCompanyID(ctx context.Context, companyID string) ([]*company.Branch, error) {
	return nil, nil
}
func (m *mockBranchRepository) Delete(ctx context.Context, id string) error { return nil }

type mockSettingRepository struct {
	GetFunc func(ctx context.Context, key string) (string, bool, error)
}

func (m *mockSettingRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", false, nil
}
func (m *mockSettingRepository) Set(ctx context.Context, key, value string) error { return nil }
func (m *mockSettingRepository) List(ctx context.Context) ([]setting.Setting, error) {
	return nil, nil
}

type sentEmail struct {
	kind string
	to   string
}

type mockEmailSender struct {
	sent     []sentEmail
	failWith error
}

func (m *mockEmailSender) SendTicketCreatedEmail(to, ticketID, title, priority, description string) error {
	m.sent = append(m.sent, sentEmail{kind: "created", to: to})
	return m.failWith
}
func (m *mockEmailSender) SendTicketStatusChangedEmail(to, ticketID, title, oldStatus, newStatus string) error {
	m.sent = append(m.sent, sentEmail{kind: "status_changed", to: to})
	return m.failWith
}
func (m *mockEmailSender) SendTicketAssignedEmail(to, ticketID, title string) error {
	m.sent = append(m.sent, sentEmail{kind: "assigned", to: to})
	return m.failWith
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

// captureSubscriber records handlers so tests can invoke them directly
// without going through the async dispatcher.
type captureSubscriber struct {
	handlers map[string]events.EventHandler
}

func newCaptureSubscriber() *captureSubscriber {
	return &captureSubscriber{handlers: make(map[string]events.EventHandler)}
}

func (s *captureSubscriber) Subscribe(eventType string, handler events.EventHandler) error {
	s.handlers[eventType] = handler
	return nil
}

func testUser(t *testing.T, id uint, email string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, "user"+email, "Test User", email, "hashed",
		role, "C001", "B001", time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return u
}

func testBranch(t *testing.T, technicianEmail *string) *company.Branch {
	t.Helper()
	b, err := company.NewBranch("Head Office", "C001", nil, technicianEmail)
	require.NoError(t, err)
	require.NoError(t, b.SetID("B001"))
	return b
}

func createdEvent() ticket.TicketCreatedEvent {
	return ticket.TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: "T001",
			EventType:   ticket.EventTicketCreated,
			OccurredAt:  time.Now(),
		},
		TicketID:    "T001",
		Title:       "Broken printer",
		Description: "Paper jam on floor 3",
		Priority:    "medium",
		CompanyID:   "C001",
		BranchID:    "B001",
		CreatedBy:   7,
	}
}

func newTestNotifier(users *mockUserRepository, branches *mockBranchRepository, settings *mockSettingRepository, sender *mockEmailSender) *Notifier {
	n := NewNotifier(users, branches, settings, sender, noopLogger{})
	n.sleep = func(time.Duration) {}
	return n
}

func TestNotifier_CreatedDeduplicatesRecipients(t *testing.T) {
	techEmail := "tech@branch.example"
	users := &mockUserRepository{
		FindSuperAdminsFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{
				testUser(t, 1, "root@hq.example", authorization.RoleSuperAdmin),
				testUser(t, 2, "shared@corp.example", authorization.RoleSuperAdmin),
			}, nil
		},
		FindStaffByBranchFunc: func(ctx context.Context, companyID, branchID string) ([]*user.User, error) {
			assert.Equal(t, "C001", companyID)
			assert.Equal(t, "B001", branchID)
			return []*user.User{
				testUser(t, 3, "shared@corp.example", authorization.RoleAdmin),
				testUser(t, 4, "helpdesk@corp.example", authorization.RoleHelpdesk),
			}, nil
		},
	}
	branches := &mockBranchRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*company.Branch, error) {
			return testBranch(t, &techEmail), nil
		},
	}
	sender := &mockEmailSender{}

	n := newTestNotifier(users, branches, &mockSettingRepository{}, sender)
	sub := newCaptureSubscriber()
	require.NoError(t, n.Register(sub))

	err := sub.handlers[ticket.EventTicketCreated].Handle(createdEvent())
	require.NoError(t, err)

	var recipients []string
	for _, s := range sender.sent {
		assert.Equal(t, "created", s.kind)
		recipients = append(recipients, s.to)
	}
	assert.ElementsMatch(t, []string{
		"root@hq.example",
		"shared@corp.example",
		"helpdesk@corp.example",
		"tech@branch.example",
	}, recipients)
}

func TestNotifier_DisabledSettingSuppressesAllMail(t *testing.T) {
	settings := &mockSettingRepository{
		GetFunc: func(ctx context.Context, key string) (string, bool, error) {
			assert.Equal(t, setting.KeyEmailNotifications, key)
			return "false", true, nil
		},
	}
	sender := &mockEmailSender{}

	n := newTestNotifier(&mockUserRepository{}, &mockBranchRepository{}, settings, sender)
	sub := newCaptureSubscriber()
	require.NoError(t, n.Register(sub))

	require.NoError(t, sub.handlers[ticket.EventTicketCreated].Handle(createdEvent()))
	assert.Empty(t, sender.sent)
}

func TestNotifier_AbsentSettingMeansEnabled(t *testing.T) {
	users := &mockUserRepository{
		FindSuperAdminsFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{testUser(t, 1, "root@hq.example", authorization.RoleSuperAdmin)}, nil
		},
	}
	sender := &mockEmailSender{}

	n := newTestNotifier(users, &mockBranchRepository{}, &mockSettingRepository{}, sender)
	sub := newCaptureSubscriber()
	require.NoError(t, n.Register(sub))

	require.NoError(t, sub.handlers[ticket.EventTicketCreated].Handle(createdEvent()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "root@hq.example", sender.sent[0].to)
}

func TestNotifier_StatusChangedMailsCreatorWithRetries(t *testing.T) {
	users := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			assert.Equal(t, uint(7), id)
			return testUser(t, 7, "reporter@corp.example", authorization.RoleUser), nil
		},
	}
	sender := &mockEmailSender{failWith: errors.New("smtp unavailable")}

	n := newTestNotifier(users, &mockBranchRepository{}, &mockSettingRepository{}, sender)
	sub := newCaptureSubscriber()
	require.NoError(t, n.Register(sub))

	evt := ticket.TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: "T001",
			EventType:   ticket.EventTicketStatusChanged,
			OccurredAt:  time.Now(),
		},
		TicketID:  "T001",
		Title:     "Broken printer",
		OldStatus: ticket.StatusOpen,
		NewStatus: ticket.StatusInProgress,
		CreatedBy: 7,
		ChangedBy: 2,
	}

	// Transport failure is swallowed after the retry budget is spent
	require.NoError(t, sub.handlers[ticket.EventTicketStatusChanged].Handle(evt))
	assert.Len(t, sender.sent, 3)
	for _, s := range sender.sent {
		assert.Equal(t, "status_changed", s.kind)
		assert.Equal(t, "reporter@corp.example", s.to)
	}
}

func TestNotifier_AssignedMailsAssigneeOnce(t *testing.T) {
	users := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			assert.Equal(t, uint(5), id)
			return testUser(t, 5, "tech@corp.example", authorization.RoleTechnician), nil
		},
	}
	sender := &mockEmailSender{failWith: errors.New("smtp unavailable")}

	n := newTestNotifier(users, &mockBranchRepository{}, &mockSettingRepository{}, sender)
	sub := newCaptureSubscriber()
	require.NoError(t, n.Register(sub))

	evt := ticket.TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: "T001",
			EventType:   ticket.EventTicketAssigned,
			OccurredAt:  time.Now(),
		},
		TicketID:   "T001",
		Title:      "Broken printer",
		AssigneeID: 5,
		AssignedBy: 2,
	}

	require.NoError(t, sub.handlers[ticket.EventTicketAssigned].Handle(evt))
	assert.Len(t, sender.sent, 1)
}

func TestNotifier_BranchLookupFailureStillMailsStaff(t *testing.T) {
	users := &mockUserRepository{
		FindSuperAdminsFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{testUser(t, 1, "root@hq.example", authorization.RoleSuperAdmin)}, nil
		},
	}
	branches := &mockBranchRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*company.Branch, error) {
			return nil, errors.New("gone")
		},
	}
	sender := &mockEmailSender{}

	n := newTestNotifier(users, branches, &mockSettingRepository{}, sender)
	sub := newCaptureSubscriber()
	require.NoError(t, n.Register(sub))

	require.NoError(t, sub.handlers[ticket.EventTicketCreated].Handle(createdEvent()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "root@hq.example", sender.sent[0].to)
}
