package company

import (
	"fmt"
	"time"
)

// Company is the tenant root. All branches, users, assets and tickets hang
// off a company, and an expired license blocks every login for its users.
type Company struct {
	id                string
	name              string
	logo              *string
	lineToken         *string
	telegramToken     *string
	notificationEmail *string
	expiryDate        *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewCompany(name string) (*Company, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &Company{
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCompany(
	id string,
	name string,
	logo *string,
	lineToken *string,
	telegramToken *string,
	notificationEmail *string,
	expiryDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Company{
		id:                id,
		name:              name,
		logo:              logo,
		lineToken:         lineToken,
		telegramToken:     telegramToken,
		notificationEmail: notificationEmail,
		expiryDate:        expiryDate,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (c *Company) ID() string                 { return c.id }
func (c *Company) Name() string               { return c.name }
func (c *Company) Logo() *string              { return c.logo }
func (c *Company) LineToken() *string         { return c.lineToken }
func (c *Company) TelegramToken() *string     { return c.telegramToken }
func (c *Company) NotificationEmail() *string { return c.notificationEmail }
func (c *Company) ExpiryDate() *time.Time     { return c.expiryDate }
func (c *Company) CreatedAt() time.Time       { return c.createdAt }
func (c *Company) UpdatedAt() time.Time       { return c.updatedAt }

func (c *Company) SetID(id string) error {
	if len(c.id) > 0 {
		return fmt.Errorf("company ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("company ID cannot be empty")
	}
	c.id = id
	return nil
}

func (c *Company) UpdateProfile(name string, logo, lineToken, telegramToken, notificationEmail *string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}

	c.name = name
	c.logo = logo
	c.lineToken = lineToken
	c.telegramToken = telegramToken
	c.notificationEmail = notificationEmail
	c.updatedAt = time.Now()

	return nil
}

func (c *Company) SetExpiryDate(expiryDate *time.Time) {
	c.expiryDate = expiryDate
	c.updatedAt = time.Now()
}

// IsLicenseExpired reports whether the company's license has lapsed.
// A company without an expiry date never expires.
func (c *Company) IsLicenseExpired(now time.Time) bool {
	if c.expiryDate == nil {
		return false
	}
	return c.expiryDate.Before(now)
}
