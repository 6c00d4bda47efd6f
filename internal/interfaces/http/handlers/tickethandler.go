package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datadesk/internal/application/ticket/usecases"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type TicketHandler struct {
	createUseCase *usecases.CreateTicketUseCase
	updateUseCase *usecases.UpdateTicketUseCase
	getUseCase    *usecases.GetTicketUseCase
	listUseCase   *usecases.ListTicketsUseCase
	deleteUseCase *usecases.DeleteTicketUseCase
	trackUseCase  *usecases.TrackTicketsUseCase
	logger        logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	deleteUC *usecases.DeleteTicketUseCase,
	trackUC *usecases.TrackTicketsUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		deleteUseCase: deleteUC,
		trackUseCase:  trackUC,
		logger:        logger,
	}
}

type CreateTicketRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Priority    string  `json:"priority"`
	AssetID     *string `json:"asset_id"`

	// Super admins may file tickets on behalf of any branch
	CompanyID string `json:"company_id"`
	BranchID  string `json:"branch_id"`

	PhoneNumber    *string `json:"phone_number"`
	DeviceLocation *string `json:"device_location"`
	IPAddress      *string `json:"ip_address"`

	CustomDeviceType         *string `json:"custom_device_type"`
	CustomDeviceSerialNumber *string `json:"custom_device_serial_number"`
	CustomDeviceAssetCode    *string `json:"custom_device_asset_code"`
	CustomDeviceBrand        *string `json:"custom_device_brand"`
	CustomDeviceModel        *string `json:"custom_device_model"`

	Images      []string `json:"images"`
	Attachments []string `json:"attachments"`
}

type UpdateTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	AssignedTo  *uint   `json:"assigned_to"`
	AssetID     *string `json:"asset_id"`
	Resolution  *string `json:"resolution"`

	PhoneNumber    *string `json:"phone_number"`
	DeviceLocation *string `json:"device_location"`
	IPAddress      *string `json:"ip_address"`

	RepairCost               *float64 `json:"repair_cost"`
	ReplacedPartName         *string  `json:"replaced_part_name"`
	ReplacedPartSerialNumber *string  `json:"replaced_part_serial_number"`
	ReplacedPartBrand        *string  `json:"replaced_part_brand"`
	ReplacedPartModel        *string  `json:"replaced_part_model"`

	CustomDeviceType         *string `json:"custom_device_type"`
	CustomDeviceSerialNumber *string `json:"custom_device_serial_number"`
	CustomDeviceAssetCode    *string `json:"custom_device_asset_code"`
	CustomDeviceBrand        *string `json:"custom_device_brand"`
	CustomDeviceModel        *string `json:"custom_device_model"`

	Images      []string `json:"images"`
	Attachments []string `json:"attachments"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	// Non super admins always file into their own company and branch
	companyID := claims.CompanyID
	branchID := claims.BranchID
	if claims.Role.IsSuperAdmin() {
		if req.CompanyID != "" {
			companyID = req.CompanyID
		}
		if req.BranchID != "" {
			branchID = req.BranchID
		}
	}

	cmd := usecases.CreateTicketCommand{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		AssetID:     req.AssetID,
		CreatedBy:   claims.UserID,
		CompanyID:   companyID,
		BranchID:    branchID,

		PhoneNumber:    req.PhoneNumber,
		DeviceLocation: req.DeviceLocation,
		IPAddress:      req.IPAddress,

		CustomDeviceType:         req.CustomDeviceType,
		CustomDeviceSerialNumber: req.CustomDeviceSerialNumber,
		CustomDeviceAssetCode:    req.CustomDeviceAssetCode,
		CustomDeviceBrand:        req.CustomDeviceBrand,
		CustomDeviceModel:        req.CustomDeviceModel,

		Images:      req.Images,
		Attachments: req.Attachments,
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Ticket, "Ticket created successfully")
}

func (h *TicketHandler) Update(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID: c.Param("id"),
		ActorID:  claims.UserID,

		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		AssetID:     req.AssetID,
		Resolution:  req.Resolution,

		PhoneNumber:    req.PhoneNumber,
		DeviceLocation: req.DeviceLocation,
		IPAddress:      req.IPAddress,

		RepairCost:               req.RepairCost,
		ReplacedPartName:         req.ReplacedPartName,
		ReplacedPartSerialNumber: req.ReplacedPartSerialNumber,
		ReplacedPartBrand:        req.ReplacedPartBrand,
		ReplacedPartModel:        req.ReplacedPartModel,

		CustomDeviceType:         req.CustomDeviceType,
		CustomDeviceSerialNumber: req.CustomDeviceSerialNumber,
		CustomDeviceAssetCode:    req.CustomDeviceAssetCode,
		CustomDeviceBrand:        req.CustomDeviceBrand,
		CustomDeviceModel:        req.CustomDeviceModel,

		Images:      req.Images,
		Attachments: req.Attachments,
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Ticket)
}

func (h *TicketHandler) Get(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketCommand{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"ticket":  result.Ticket,
		"history": result.History,
	})
}

func (h *TicketHandler) List(c *gin.Context) {
	cmd := usecases.ListTicketsCommand{
		Scope:    middleware.GetScope(c),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		AssetID:  c.Query("asset_id"),
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"tickets": result.Tickets,
		"total":   result.Total,
	})
}

func (h *TicketHandler) Delete(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	var actorID uint
	if claims != nil {
		actorID = claims.UserID
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: c.Param("id"),
		ActorID:  actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// Track is the public tracking endpoint. No authentication, no scoping.
func (h *TicketHandler) Track(c *gin.Context) {
	result, err := h.trackUseCase.Execute(c.Request.Context(), usecases.TrackTicketsCommand{
		Key: c.Param("serialNumber"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"tickets": result.Tickets})
}
