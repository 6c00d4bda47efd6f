package user

import (
	"fmt"
	"strings"
	"time"

	"datadesk/internal/shared/authorization"
)

type User struct {
	id             uint
	username       string
	name           string
	email          string
	hashedPassword string
	role           authorization.UserRole
	companyID      string
	branchID       string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewUser(
	username string,
	name string,
	email string,
	hashedPassword string,
	role authorization.UserRole,
	companyID string,
	branchID string,
) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(hashedPassword) == 0 {
		return nil, fmt.Errorf("password is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if len(companyID) == 0 {
		return nil, fmt.Errorf("company ID is required")
	}

	now := time.Now()
	return &User{
		username:       username,
		name:           name,
		email:          email,
		hashedPassword: hashedPassword,
		role:           role,
		companyID:      companyID,
		branchID:       branchID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	name string,
	email string,
	hashedPassword string,
	role authorization.UserRole,
	companyID string,
	branchID string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:             id,
		username:       username,
		name:           name,
		email:          email,
		hashedPassword: hashedPassword,
		role:           role,
		companyID:      companyID,
		branchID:       branchID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) HashedPassword() string       { return u.hashedPassword }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CompanyID() string            { return u.companyID }
func (u *User) BranchID() string             { return u.branchID }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateProfile(name, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}

	u.name = name
	u.email = email
	u.updatedAt = time.Now()

	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

func (u *User) MoveTo(companyID, branchID string) error {
	if len(companyID) == 0 {
		return fmt.Errorf("company ID is required")
	}
	u.companyID = companyID
	u.branchID = branchID
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePassword(hashedPassword string) error {
	if len(hashedPassword) == 0 {
		return fmt.Errorf("password is required")
	}
	u.hashedPassword = hashedPassword
	u.updatedAt = time.Now()
	return nil
}

// Scope builds the row-visibility scope this user carries on every request.
func (u *User) Scope() authorization.Scope {
	return authorization.Scope{
		Role:      u.role,
		UserID:    u.id,
		CompanyID: u.companyID,
		BranchID:  u.branchID,
	}
}
