package usecases

import (
	"time"

	"datadesk/internal/domain/datacenter"
)

// LogDTO is the wire representation of a data center visit log.
type LogDTO struct {
	ID               string     `json:"id"`
	VisitorName      string     `json:"visitor_name"`
	VisitorCompany   *string    `json:"visitor_company,omitempty"`
	ContactNumber    string     `json:"contact_number"`
	EntryTime        time.Time  `json:"entry_time"`
	ExitTime         *time.Time `json:"exit_time,omitempty"`
	Purpose          string     `json:"purpose"`
	EquipmentBrought *string    `json:"equipment_brought,omitempty"`
	AuthorizedBy     string     `json:"authorized_by"`
	CompanyID        string     `json:"company_id"`
	BranchID         string     `json:"branch_id"`
	CreatedBy        uint       `json:"created_by"`
	Notes            *string    `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toLogDTO(l *datacenter.Log) LogDTO {
	return LogDTO{
		ID:               l.ID(),
		VisitorName:      l.VisitorName(),
		VisitorCompany:   l.VisitorCompany(),
		ContactNumber:    l.ContactNumber(),
		EntryTime:        l.EntryTime(),
		ExitTime:         l.ExitTime(),
		Purpose:          l.Purpose(),
		EquipmentBrought: l.EquipmentBrought(),
		AuthorizedBy:     l.AuthorizedBy(),
		CompanyID:        l.CompanyID(),
		BranchID:         l.BranchID(),
		CreatedBy:        l.CreatedBy(),
		Notes:            l.Notes(),
		CreatedAt:        l.CreatedAt(),
		UpdatedAt:        l.UpdatedAt(),
	}
}
