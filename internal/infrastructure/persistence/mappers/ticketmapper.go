package mappers

import (
	"encoding/json"
	"fmt"

	"datadesk/internal/domain/ticket"
	"datadesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// HistoryToModel converts a history entry to a persistence model.
	HistoryToModel(h *ticket.History) *models.TicketHistoryModel

	// HistoryToDomain converts a history persistence model to a domain entity.
	HistoryToDomain(model *models.TicketHistoryModel) *ticket.History
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
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

		ClosedAt:  timePtrToMillis(t.ClosedAt()),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}

	// MySQL JSON columns reject the empty string, so empty slices are
	// stored as "[]" rather than left at the field's zero value.
	model.Attachments = marshalStringSlice(t.Attachments())
	model.Images = marshalStringSlice(t.Images())

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// History entries are loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var attachments []string
	if model.Attachments != "" {
		if err := json.Unmarshal([]byte(model.Attachments), &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket attachments (id=%s): %w", model.ID, err)
		}
	}

	var images []string
	if model.Images != "" {
		if err := json.Unmarshal([]byte(model.Images), &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket images (id=%s): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(ticket.Record{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		AssetID:     model.AssetID,
		Priority:    model.Priority,
		Status:      ticket.Status(model.Status),
		CreatedBy:   model.CreatedBy,
		AssignedTo:  model.AssignedTo,
		ApprovedBy:  model.ApprovedBy,
		ClosedBy:    model.ClosedBy,
		CompanyID:   model.CompanyID,
		BranchID:    model.BranchID,
		Attachments: attachments,
		Resolution:  model.Resolution,

		PhoneNumber:    model.PhoneNumber,
		DeviceLocation: model.DeviceLocation,
		IPAddress:      model.IPAddress,

		RepairCost:               model.RepairCost,
		ReplacedPartName:         model.ReplacedPartName,
		ReplacedPartSerialNumber: model.ReplacedPartSerialNumber,
		ReplacedPartBrand:        model.ReplacedPartBrand,
		ReplacedPartModel:        model.ReplacedPartModel,

		CustomDeviceType:         model.CustomDeviceType,
		CustomDeviceSerialNumber: model.CustomDeviceSerialNumber,
		CustomDeviceAssetCode:    model.CustomDeviceAssetCode,
		CustomDeviceBrand:        model.CustomDeviceBrand,
		CustomDeviceModel:        model.CustomDeviceModel,

		Images:    images,
		ClosedAt:  millisPtrToTime(model.ClosedAt),
		CreatedAt: millisToTime(model.CreatedAt),
		UpdatedAt: millisToTime(model.UpdatedAt),
	})
}

// HistoryToModel converts a history entry to a persistence model.
func (m *TicketMapperImpl) HistoryToModel(h *ticket.History) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:          h.ID(),
		TicketID:    h.TicketID(),
		Action:      h.Action(),
		Description: h.Description(),
		UserID:      h.UserID(),
		CreatedAt:   h.CreatedAt().UnixMilli(),
	}
}

// HistoryToDomain converts a history persistence model to a domain entity.
func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) *ticket.History {
	return ticket.ReconstructHistory(
		model.ID,
		model.TicketID,
		model.Action,
		model.Description,
		model.UserID,
		millisToTime(model.CreatedAt),
	)
}
