package usecases

import (
	"time"

	"datadesk/internal/domain/ticket"
)

// TicketDTO is the wire representation of a ticket.
type TicketDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AssetID     *string  `json:"asset_id,omitempty"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	CreatedBy   uint     `json:"created_by"`
	AssignedTo  *uint    `json:"assigned_to,omitempty"`
	ApprovedBy  *uint    `json:"approved_by,omitempty"`
	ClosedBy    *uint    `json:"closed_by,omitempty"`
	CompanyID   string   `json:"company_id"`
	BranchID    string   `json:"branch_id"`
	Attachments []string `json:"attachments,omitempty"`
	Resolution  *string  `json:"resolution,omitempty"`

	PhoneNumber    *string `json:"phone_number,omitempty"`
	DeviceLocation *string `json:"device_location,omitempty"`
	IPAddress      *string `json:"ip_address,omitempty"`

	RepairCost               *float64 `json:"repair_cost,omitempty"`
	ReplacedPartName         *string  `json:"replaced_part_name,omitempty"`
	ReplacedPartSerialNumber *string  `json:"replaced_part_serial_number,omitempty"`
	ReplacedPartBrand        *string  `json:"replaced_part_brand,omitempty"`
	ReplacedPartModel        *string  `json:"replaced_part_model,omitempty"`

	CustomDeviceType         *string `json:"custom_device_type,omitempty"`
	CustomDeviceSerialNumber *string `json:"custom_device_serial_number,omitempty"`
	CustomDeviceAssetCode    *string `json:"custom_device_asset_code,omitempty"`
	CustomDeviceBrand        *string `json:"custom_device_brand,omitempty"`
	CustomDeviceModel        *string `json:"custom_device_model,omitempty"`

	Images    []string   `json:"images,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// HistoryDTO is one audit trail entry.
type HistoryDTO struct {
	ID          uint      `json:"id"`
	TicketID    string    `json:"ticket_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		AssetID:     t.AssetID(),
		Priority:    t.Priority(),
		Status:      t.Status().String(),
		CreatedBy:   t.CreatedBy(),
		AssignedTo:  t.AssignedTo(),
		ApprovedBy:  t.ApprovedBy(),
		ClosedBy:    t.ClosedBy(),
		CompanyID:   t.CompanyID(),
		BranchID:    t.BranchID(),
		Attachments: t.Attachments(),
		Resolution:  t.Resolution(),

		PhoneNumber:    t.PhoneNumber(),
		DeviceLocation: t.DeviceLocation(),
		IPAddress:      t.IPAddress(),

		RepairCost:               t.RepairCost(),
		ReplacedPartName:         t.ReplacedPartName(),
		ReplacedPartSerialNumber: t.ReplacedPartSerialNumber(),
		ReplacedPartBrand:        t.ReplacedPartBrand(),
		ReplacedPartModel:        t.ReplacedPartModel(),

		CustomDeviceType:         t.CustomDeviceType(),
		CustomDeviceSerialNumber: t.CustomDeviceSerialNumber(),
		CustomDeviceAssetCode:    t.CustomDeviceAssetCode(),
		CustomDeviceBrand:        t.CustomDeviceBrand(),
		CustomDeviceModel:        t.CustomDeviceModel(),

		Images:    t.Images(),
		ClosedAt:  t.ClosedAt(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func toHistoryDTO(h *ticket.History) HistoryDTO {
	return HistoryDTO{
		ID:          h.ID(),
		TicketID:    h.TicketID(),
		Action:      h.Action(),
		Description: h.Description(),
		UserID:      h.UserID(),
		CreatedAt:   h.CreatedAt(),
	}
}
