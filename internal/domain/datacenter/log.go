package datacenter

import (
	"fmt"
	"time"
)

// Log records a visitor entering and leaving a data center room.
type Log struct {
	id               string
	visitorName      string
	visitorCompany   *string
	contactNumber    string
	entryTime        time.Time
	exitTime         *time.Time
	purpose          string
	equipmentBrought *string
	authorizedBy     string
	companyID        string
	branchID         string
	createdBy        uint
	notes            *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewLog(
	visitorName string,
	visitorCompany *string,
	contactNumber string,
	entryTime time.Time,
	purpose string,
	equipmentBrought *string,
	authorizedBy string,
	companyID string,
	branchID string,
	createdBy uint,
	notes *string,
) (*Log, error) {
	if len(visitorName) == 0 {
		return nil, fmt.Errorf("visitor name is required")
	}
	if len(contactNumber) == 0 {
		return nil, fmt.Errorf("contact number is required")
	}
	if entryTime.IsZero() {
		return nil, fmt.Errorf("entry time is required")
	}
	if len(purpose) == 0 {
		return nil, fmt.Errorf("purpose is required")
	}
	if len(authorizedBy) == 0 {
		return nil, fmt.Errorf("authorized by is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Log{
		visitorName:      visitorName,
		visitorCompany:   visitorCompany,
		contactNumber:    contactNumber,
		entryTime:        entryTime,
		purpose:          purpose,
		equipmentBrought: equipmentBrought,
		authorizedBy:     authorizedBy,
		companyID:        companyID,
		branchID:         branchID,
		createdBy:        createdBy,
		notes:            notes,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructLog(
	id string,
	visitorName string,
	visitorCompany *string,
	contactNumber string,
	entryTime time.Time,
	exitTime *time.Time,
	purpose string,
	equipmentBrought *string,
	authorizedBy string,
	companyID string,
	branchID string,
	createdBy uint,
	notes *string,
	createdAt, updatedAt time.Time,
) (*Log, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("log ID is required")
	}

	return &Log{
		id:               id,
		visitorName:      visitorName,
		visitorCompany:   visitorCompany,
		contactNumber:    contactNumber,
		entryTime:        entryTime,
		exitTime:         exitTime,
		purpose:          purpose,
		equipmentBrought: equipmentBrought,
		authorizedBy:     authorizedBy,
		companyID:        companyID,
		branchID:         branchID,
		createdBy:        createdBy,
		notes:            notes,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (l *Log) ID() string                { return l.id }
func (l *Log) VisitorName() string       { return l.visitorName }
func (l *Log) VisitorCompany() *string   { return l.visitorCompany }
func (l *Log) ContactNumber() string     { return l.contactNumber }
func (l *Log) EntryTime() time.Time      { return l.entryTime }
func (l *Log) ExitTime() *time.Time      { return l.exitTime }
func (l *Log) Purpose() string           { return l.purpose }
func (l *Log) EquipmentBrought() *string { return l.equipmentBrought }
func (l *Log) AuthorizedBy() string      { return l.authorizedBy }
func (l *Log) CompanyID() string         { return l.companyID }
func (l *Log) BranchID() string          { return l.branchID }
func (l *Log) CreatedBy() uint           { return l.createdBy }
func (l *Log) Notes() *string            { return l.notes }
func (l *Log) CreatedAt() time.Time      { return l.createdAt }
func (l *Log) UpdatedAt() time.Time      { return l.updatedAt }

func (l *Log) SetID(id string) error {
	if len(l.id) > 0 {
		return fmt.Errorf("log ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("log ID cannot be empty")
	}
	l.id = id
	return nil
}

func (l *Log) Update(
	visitorName string,
	visitorCompany *string,
	contactNumber string,
	entryTime time.Time,
	purpose string,
	equipmentBrought *string,
	authorizedBy string,
	notes *string,
) error {
	if len(visitorName) == 0 {
		return fmt.Errorf("visitor name is required")
	}

	l.visitorName = visitorName
	l.visitorCompany = visitorCompany
	l.contactNumber = contactNumber
	l.entryTime = entryTime
	l.purpose = purpose
	l.equipmentBrought = equipmentBrought
	l.authorizedBy = authorizedBy
	l.notes = notes
	l.updatedAt = time.Now()

	return nil
}

// RecordExit stamps the visitor's departure. The caller may pass the exact
// time reported by the client; a zero time means "now". Recording exit twice
// is an error.
func (l *Log) RecordExit(exitTime time.Time) error {
	if l.exitTime != nil {
		return fmt.Errorf("exit already recorded")
	}

	if exitTime.IsZero() {
		exitTime = time.Now()
	}
	l.exitTime = &exitTime
	l.updatedAt = time.Now()

	return nil
}
