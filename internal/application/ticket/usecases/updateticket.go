package usecases

import (
	"context"

	"datadesk/internal/domain/shared/events"
	"datadesk/internal/domain/ticket"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// UpdateTicketCommand represents the input for updating a ticket. Nil
// pointer fields are left untouched; set pointers overwrite, including
// clearing a column with a pointer to the zero value.
type UpdateTicketCommand struct {
	TicketID string
	ActorID  uint

	Title       *string
	Description *string
	Priority    *string
	Status      *string
	AssignedTo  *uint
	AssetID     *string
	Resolution  *string

	PhoneNumber    *string
	DeviceLocation *string
	IPAddress      *string

	RepairCost               *float64
	ReplacedPartName         *string
	ReplacedPartSerialNumber *string
	ReplacedPartBrand        *string
	ReplacedPartModel        *string

	CustomDeviceType         *string
	CustomDeviceSerialNumber *string
	CustomDeviceAssetCode    *string
	CustomDeviceBrand        *string
	CustomDeviceModel        *string

	Images      []string
	Attachments []string
}

// UpdateTicketResult represents the output of updating a ticket
type UpdateTicketResult struct {
	Ticket TicketDTO
}

// UpdateTicketUseCase handles ticket updates, including the status
// transitions and assignment changes that drive history and notifications.
type UpdateTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	txManager   TransactionManager
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	txManager TransactionManager,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	oldStatus := existing.Status()
	statusChanged := false
	assigneeChanged := false

	if err := uc.applyDetails(existing, cmd); err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		changed, err := existing.ChangeStatus(ticket.Status(*cmd.Status), cmd.ActorID)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		statusChanged = changed
	}

	if cmd.AssignedTo != nil {
		changed, err := existing.AssignTo(*cmd.AssignedTo)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		assigneeChanged = changed
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, existing); err != nil {
			return err
		}

		// History records effective status transitions only. Assignment
		// changes are notified but leave no history entry.
		if statusChanged {
			history, err := ticket.NewHistory(
				existing.ID(),
				"status_changed",
				existing.Status().Label(),
				cmd.ActorID,
			)
			if err != nil {
				return apperrors.NewInternalError("failed to build ticket history", err.Error())
			}
			if err := uc.historyRepo.Append(txCtx, history); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket",
			"ticket_id", cmd.TicketID,
			"error", err,
		)
		return nil, err
	}

	if statusChanged {
		event := ticket.NewTicketStatusChangedEvent(existing, oldStatus, cmd.ActorID)
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket status changed event",
				"ticket_id", existing.ID(),
				"error", err,
			)
		}
	}

	if assigneeChanged {
		event := ticket.NewTicketAssignedEvent(existing, *cmd.AssignedTo, cmd.ActorID)
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket assigned event",
				"ticket_id", existing.ID(),
				"error", err,
			)
		}
	}

	uc.logger.Infow("ticket updated",
		"ticket_id", existing.ID(),
		"status", existing.Status().String(),
		"status_changed", statusChanged,
		"assignee_changed", assigneeChanged,
	)

	return &UpdateTicketResult{Ticket: toTicketDTO(existing)}, nil
}

func (uc *UpdateTicketUseCase) applyDetails(t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Title != nil || cmd.Description != nil || cmd.Priority != nil {
		title := t.Title()
		description := t.Description()
		priority := t.Priority()
		if cmd.Title != nil {
			title = *cmd.Title
		}
		if cmd.Description != nil {
			description = *cmd.Description
		}
		if cmd.Priority != nil {
			priority = *cmd.Priority
		}
		if err := t.UpdateDetails(title, description, priority); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.AssetID != nil {
		t.SetAssetID(cmd.AssetID)
	}
	if cmd.Resolution != nil {
		t.SetResolution(cmd.Resolution)
	}

	if cmd.PhoneNumber != nil || cmd.DeviceLocation != nil || cmd.IPAddress != nil {
		phone := t.PhoneNumber()
		location := t.DeviceLocation()
		ip := t.IPAddress()
		if cmd.PhoneNumber != nil {
			phone = cmd.PhoneNumber
		}
		if cmd.DeviceLocation != nil {
			location = cmd.DeviceLocation
		}
		if cmd.IPAddress != nil {
			ip = cmd.IPAddress
		}
		t.SetContactInfo(phone, location, ip)
	}

	if cmd.RepairCost != nil || cmd.ReplacedPartName != nil || cmd.ReplacedPartSerialNumber != nil ||
		cmd.ReplacedPartBrand != nil || cmd.ReplacedPartModel != nil {
		cost := t.RepairCost()
		partName := t.ReplacedPartName()
		partSerial := t.ReplacedPartSerialNumber()
		partBrand := t.ReplacedPartBrand()
		partModel := t.ReplacedPartModel()
		if cmd.RepairCost != nil {
			cost = cmd.RepairCost
		}
		if cmd.ReplacedPartName != nil {
			partName = cmd.ReplacedPartName
		}
		if cmd.ReplacedPartSerialNumber != nil {
			partSerial = cmd.ReplacedPartSerialNumber
		}
		if cmd.ReplacedPartBrand != nil {
			partBrand = cmd.ReplacedPartBrand
		}
		if cmd.ReplacedPartModel != nil {
			partModel = cmd.ReplacedPartModel
		}
		t.SetRepairDetails(cost, partName, partSerial, partBrand, partModel)
	}

	if cmd.CustomDeviceType != nil || cmd.CustomDeviceSerialNumber != nil || cmd.CustomDeviceAssetCode != nil ||
		cmd.CustomDeviceBrand != nil || cmd.CustomDeviceModel != nil {
		deviceType := t.CustomDeviceType()
		serial := t.CustomDeviceSerialNumber()
		assetCode := t.CustomDeviceAssetCode()
		brand := t.CustomDeviceBrand()
		model := t.CustomDeviceModel()
		if cmd.CustomDeviceType != nil {
			deviceType = cmd.CustomDeviceType
		}
		if cmd.CustomDeviceSerialNumber != nil {
			serial = cmd.CustomDeviceSerialNumber
		}
		if cmd.CustomDeviceAssetCode != nil {
			assetCode = cmd.CustomDeviceAssetCode
		}
		if cmd.CustomDeviceBrand != nil {
			brand = cmd.CustomDeviceBrand
		}
		if cmd.CustomDeviceModel != nil {
			model = cmd.CustomDeviceModel
		}
		t.SetCustomDevice(deviceType, serial, assetCode, brand, model)
	}

	if cmd.Images != nil {
		t.SetImages(cmd.Images)
	}
	if cmd.Attachments != nil {
		t.SetAttachments(cmd.Attachments)
	}

	return nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	var missing []string

	if len(cmd.TicketID) == 0 {
		missing = append(missing, "ticket_id")
	}
	if cmd.ActorID == 0 {
		missing = append(missing, "actor_id")
	}

	if len(missing) > 0 {
		return apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	return nil
}
