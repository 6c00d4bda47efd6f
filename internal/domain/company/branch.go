package company

import (
	"fmt"
	"time"
)

// Branch belongs to exactly one company. Its optional ticket prefix switches
// the branch into a dedicated ticket numbering namespace (HQ-001 instead of
// T001); the optional technician email receives new-ticket notifications.
type Branch struct {
	id              string
	name            string
	companyID       string
	ticketPrefix    *string
	technicianEmail *string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBranch(name, companyID string, ticketPrefix, technicianEmail *string) (*Branch, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(companyID) == 0 {
		return nil, fmt.Errorf("company ID is required")
	}

	now := time.Now()
	return &Branch{
		name:            name,
		companyID:       companyID,
		ticketPrefix:    ticketPrefix,
		technicianEmail: technicianEmail,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructBranch(
	id string,
	name string,
	companyID string,
	ticketPrefix *string,
	technicianEmail *string,
	createdAt, updatedAt time.Time,
) (*Branch, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("branch ID is required")
	}

	return &Branch{
		id:              id,
		name:            name,
		companyID:       companyID,
		ticketPrefix:    ticketPrefix,
		technicianEmail: technicianEmail,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (b *Branch) ID() string               { return b.id }
func (b *Branch) Name() string             { return b.name }
func (b *Branch) CompanyID() string        { return b.companyID }
func (b *Branch) TicketPrefix() *string    { return b.ticketPrefix }
func (b *Branch) TechnicianEmail() *string { return b.technicianEmail }
func (b *Branch) CreatedAt() time.Time     { return b.createdAt }
func (b *Branch) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Branch) SetID(id string) error {
	if len(b.id) > 0 {
		return fmt.Errorf("branch ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("branch ID cannot be empty")
	}
	b.id = id
	return nil
}

func (b *Branch) Update(name string, ticketPrefix, technicianEmail *string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}

	b.name = name
	b.ticketPrefix = ticketPrefix
	b.technicianEmail = technicianEmail
	b.updatedAt = time.Now()

	return nil
}

// EffectiveTicketPrefix returns the prefix used when numbering this branch's
// tickets, or "" for the shared unprefixed namespace.
func (b *Branch) EffectiveTicketPrefix() string {
	if b.ticketPrefix == nil {
		return ""
	}
	return *b.ticketPrefix
}
