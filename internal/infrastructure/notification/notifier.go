// Package notification delivers ticket email out of band. It consumes
// domain events from the in-memory dispatcher, so a slow or failing SMTP
// server never blocks or fails the mutation that raised the event.
package notification

import (
	"context"
	"fmt"
	"time"

	"datadesk/internal/domain/company"
	"datadesk/internal/domain/setting"
	"datadesk/internal/domain/shared/events"
	"datadesk/internal/domain/ticket"
	"datadesk/internal/domain/user"
	"datadesk/internal/shared/logger"
)

// EmailSender is the transport used for ticket notifications.
type EmailSender interface {
	SendTicketCreatedEmail(to, ticketID, title, priority, description string) error
	SendTicketStatusChangedEmail(to, ticketID, title, oldStatus, newStatus string) error
	SendTicketAssignedEmail(to, ticketID, title string) error
}

// statusChangedRetries and statusChangedBackoff give status change mail a
// second and third chance. Created and assigned mail gets a single attempt.
const statusChangedRetries = 3

var statusChangedBackoff = []time.Duration{60 * time.Second, 300 * time.Second}

type Notifier struct {
	users    user.Repository
	branches company.BranchRepository
	settings setting.Repository
	email    EmailSender
	log      logger.Interface

	// sleep is replaceable in tests
	sleep func(time.Duration)
}

func NewNotifier(
	users user.Repository,
	branches company.BranchRepository,
	settings setting.Repository,
	email EmailSender,
	log logger.Interface,
) *Notifier {
	return &Notifier{
		users:    users,
		branches: branches,
		settings: settings,
		email:    email,
		log:      log,
		sleep:    time.Sleep,
	}
}

// Register subscribes the notifier to the ticket event stream.
func (n *Notifier) Register(dispatcher events.EventSubscriber) error {
	handlers := map[string]func(events.DomainEvent) error{
		ticket.EventTicketCreated:       n.handleCreated,
		ticket.EventTicketStatusChanged: n.handleStatusChanged,
		ticket.EventTicketAssigned:      n.handleAssigned,
	}

	for eventType, handler := range handlers {
		if err := dispatcher.Subscribe(eventType, events.NewSimpleEventHandler(eventType, handler)); err != nil {
			return fmt.Errorf("failed to subscribe %s: %w", eventType, err)
		}
	}

	return nil
}

func (n *Notifier) handleCreated(e events.DomainEvent) error {
	evt, ok := e.(ticket.TicketCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}

	ctx := context.Background()
	if !n.enabled(ctx) {
		return nil
	}

	recipients, err := n.createdRecipients(ctx, evt.CompanyID, evt.BranchID)
	if err != nil {
		return err
	}

	for _, to := range recipients {
		n.deliver(evt.TicketID, to, 1, nil, func() error {
			return n.email.SendTicketCreatedEmail(to, evt.TicketID, evt.Title, evt.Priority, evt.Description)
		})
	}

	return nil
}

func (n *Notifier) handleStatusChanged(e events.DomainEvent) error {
	evt, ok := e.(ticket.TicketStatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}

	ctx := context.Background()
	if !n.enabled(ctx) {
		return nil
	}

	creator, err := n.users.FindByID(ctx, evt.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to resolve ticket creator: %w", err)
	}
	if creator.Email() == "" {
		return nil
	}

	n.deliver(evt.TicketID, creator.Email(), statusChangedRetries, statusChangedBackoff, func() error {
		return n.email.SendTicketStatusChangedEmail(
			creator.Email(), evt.TicketID, evt.Title,
			evt.OldStatus.Label(), evt.NewStatus.Label(),
		)
	})

	return nil
}

func (n *Notifier) handleAssigned(e events.DomainEvent) error {
	evt, ok := e.(ticket.TicketAssignedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", e.GetEventType())
	}

	ctx := context.Background()
	if !n.enabled(ctx) {
		return nil
	}

	assignee, err := n.users.FindByID(ctx, evt.AssigneeID)
	if err != nil {
		return fmt.Errorf("failed to resolve ticket assignee: %w", err)
	}
	if assignee.Email() == "" {
		return nil
	}

	n.deliver(evt.TicketID, assignee.Email(), 1, nil, func() error {
		return n.email.SendTicketAssignedEmail(assignee.Email(), evt.TicketID, evt.Title)
	})

	return nil
}

// enabled checks the emailNotifications system setting. Absent means on.
func (n *Notifier) enabled(ctx context.Context) bool {
	value, found, err := n.settings.Get(ctx, setting.KeyEmailNotifications)
	if err != nil {
		n.log.Warnw("failed to read email notification setting, assuming enabled", "error", err)
		return true
	}
	return setting.EmailNotificationsEnabled(value, found)
}

// createdRecipients resolves who hears about a new ticket: every super
// admin, the staff of the ticket's company and branch, and the branch's
// standing technician address when one is configured. Deduplicated by
// email address.
func (n *Notifier) createdRecipients(ctx context.Context, companyID, branchID string) ([]string, error) {
	superAdmins, err := n.users.FindSuperAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve super admins: %w", err)
	}

	staff, err := n.users.FindStaffByBranch(ctx, companyID, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve branch staff: %w", err)
	}

	seen := make(map[string]bool)
	var recipients []string

	addEmail := func(email string) {
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		recipients = append(recipients, email)
	}

	for _, u := range superAdmins {
		addEmail(u.Email())
	}
	for _, u := range staff {
		addEmail(u.Email())
	}

	branch, err := n.branches.FindByID(ctx, branchID)
	if err != nil {
		n.log.Warnw("failed to load branch for technician email", "branch_id", branchID, "error", err)
		return recipients, nil
	}
	if branch.TechnicianEmail() != nil {
		addEmail(*branch.TechnicianEmail())
	}

	return recipients, nil
}

// deliver sends one email with the given retry budget. Failures are logged
// as warnings and never propagate; notification mail is best effort.
func (n *Notifier) deliver(ticketID, to string, attempts int, backoff []time.Duration, send func() error) {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = send(); err == nil {
			return
		}

		n.log.Warnw("ticket notification delivery failed",
			"ticket_id", ticketID,
			"recipient", to,
			"attempt", attempt,
			"error", err,
		)

		if attempt < attempts && len(backoff) > 0 {
			wait := backoff[len(backoff)-1]
			if attempt-1 < len(backoff) {
				wait = backoff[attempt-1]
			}
			n.sleep(wait)
		}
	}
}
