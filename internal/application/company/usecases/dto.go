package usecases

import (
	"time"

	"datadesk/internal/domain/company"
)

// CompanyDTO is the wire representation of a company.
type CompanyDTO struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Logo              *string    `json:"logo,omitempty"`
	LineToken         *string    `json:"line_token,omitempty"`
	TelegramToken     *string    `json:"telegram_token,omitempty"`
	NotificationEmail *string    `json:"notification_email,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// BranchDTO is the wire representation of a branch.
type BranchDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CompanyID       string    `json:"company_id"`
	TicketPrefix    *string   `json:"ticket_prefix,omitempty"`
	TechnicianEmail *string   `json:"technician_email,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toCompanyDTO(c *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:                c.ID(),
		Name:              c.Name(),
		Logo:              c.Logo(),
		LineToken:         c.LineToken(),
		TelegramToken:     c.TelegramToken(),
		NotificationEmail: c.NotificationEmail(),
		ExpiryDate:        c.ExpiryDate(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}

func toBranchDTO(b *company.Branch) BranchDTO {
	return BranchDTO{
		ID:              b.ID(),
		Name:            b.Name(),
		CompanyID:       b.CompanyID(),
		TicketPrefix:    b.TicketPrefix(),
		TechnicianEmail: b.TechnicianEmail(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}
