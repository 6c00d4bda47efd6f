package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketCreatedEmail(to, ticketID, title, priority, description string) error {
	subject := fmt.Sprintf("New Ticket %s: %s", ticketID, title)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Repair Ticket</h2>
			<p>A new ticket has been created and needs attention.</p>
			<p><strong>Ticket:</strong> %s</p>
			<p><strong>Title:</strong> %s</p>
			<p><strong>Priority:</strong> %s</p>
			<p><strong>Description:</strong> %s</p>
		</body>
		</html>
	`, ticketID, title, priority, description)

	plainBody := fmt.Sprintf(`
New Repair Ticket

A new ticket has been created and needs attention.

Ticket: %s
Title: %s
Priority: %s
Description: %s
	`, ticketID, title, priority, description)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketStatusChangedEmail(to, ticketID, title, oldStatus, newStatus string) error {
	subject := fmt.Sprintf("Ticket %s Status Update", ticketID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Status Changed</h2>
			<p><strong>Ticket:</strong> %s</p>
			<p><strong>Title:</strong> %s</p>
			<p><strong>Status:</strong> %s &rarr; %s</p>
		</body>
		</html>
	`, ticketID, title, oldStatus, newStatus)

	plainBody := fmt.Sprintf(`
Ticket Status Changed

Ticket: %s
Title: %s
Status: %s -> %s
	`, ticketID, title, oldStatus, newStatus)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketAssignedEmail(to, ticketID, title string) error {
	subject := fmt.Sprintf("Ticket %s Assigned to You", ticketID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Assigned</h2>
			<p>The following ticket has been assigned to you:</p>
			<p><strong>Ticket:</strong> %s</p>
			<p><strong>Title:</strong> %s</p>
		</body>
		</html>
	`, ticketID, title)

	plainBody := fmt.Sprintf(`
Ticket Assigned

The following ticket has been assigned to you:

Ticket: %s
Title: %s
	`, ticketID, title)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
