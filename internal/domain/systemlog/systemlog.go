// Package systemlog records who did what across the application: logins,
// creates, updates and deletes, with the acting user's context denormalized
// so entries survive user deletion.
package systemlog

import (
	"fmt"
	"time"
)

const (
	ActionLogin  = "LOGIN"
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

type Entry struct {
	id          uint
	userID      uint
	userName    string
	companyID   string
	companyName string
	action      string
	module      string
	description string
	ipAddress   string
	userAgent   string
	createdAt   time.Time
}

func NewEntry(
	userID uint,
	userName string,
	companyID string,
	companyName string,
	action string,
	module string,
	description string,
	ipAddress string,
	userAgent string,
) (*Entry, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}
	if len(module) == 0 {
		return nil, fmt.Errorf("module is required")
	}

	return &Entry{
		userID:      userID,
		userName:    userName,
		companyID:   companyID,
		companyName: companyName,
		action:      action,
		module:      module,
		description: description,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructEntry(
	id uint,
	userID uint,
	userName string,
	companyID string,
	companyName string,
	action string,
	module string,
	description string,
	ipAddress string,
	userAgent string,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:          id,
		userID:      userID,
		userName:    userName,
		companyID:   companyID,
		companyName: companyName,
		action:      action,
		module:      module,
		description: description,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		createdAt:   createdAt,
	}
}

func (e *Entry) ID() uint            { return e.id }
func (e *Entry) UserID() uint        { return e.userID }
func (e *Entry) UserName() string    { return e.userName }
func (e *Entry) CompanyID() string   { return e.companyID }
func (e *Entry) CompanyName() string { return e.companyName }
func (e *Entry) Action() string      { return e.action }
func (e *Entry) Module() string      { return e.module }
func (e *Entry) Description() string { return e.description }
func (e *Entry) IPAddress() string   { return e.ipAddress }
func (e *Entry) UserAgent() string   { return e.userAgent }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
