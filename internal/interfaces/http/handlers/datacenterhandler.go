package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"datadesk/internal/application/datacenter/usecases"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type DataCenterHandler struct {
	createUseCase *usecases.CreateLogUseCase
	updateUseCase *usecases.UpdateLogUseCase
	exitUseCase   *usecases.RecordExitUseCase
	getUseCase    *usecases.GetLogUseCase
	listUseCase   *usecases.ListLogsUseCase
	deleteUseCase *usecases.DeleteLogUseCase
	logger        logger.Interface
}

func NewDataCenterHandler(
	createUC *usecases.CreateLogUseCase,
	updateUC *usecases.UpdateLogUseCase,
	exitUC *usecases.RecordExitUseCase,
	getUC *usecases.GetLogUseCase,
	listUC *usecases.ListLogsUseCase,
	deleteUC *usecases.DeleteLogUseCase,
	logger logger.Interface,
) *DataCenterHandler {
	return &DataCenterHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		exitUseCase:   exitUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type DataCenterLogRequest struct {
	VisitorName      string    `json:"visitor_name" binding:"required"`
	VisitorCompany   *string   `json:"visitor_company"`
	ContactNumber    string    `json:"contact_number" binding:"required"`
	EntryTime        time.Time `json:"entry_time"`
	Purpose          string    `json:"purpose" binding:"required"`
	EquipmentBrought *string   `json:"equipment_brought"`
	AuthorizedBy     string    `json:"authorized_by" binding:"required"`
	Notes            *string   `json:"notes"`
}

type RecordExitRequest struct {
	ExitTime time.Time `json:"exit_time"`
}

func (h *DataCenterHandler) Create(c *gin.Context) {
	var req DataCenterLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateLogCommand{
		VisitorName:      req.VisitorName,
		VisitorCompany:   req.VisitorCompany,
		ContactNumber:    req.ContactNumber,
		EntryTime:        req.EntryTime,
		Purpose:          req.Purpose,
		EquipmentBrought: req.EquipmentBrought,
		AuthorizedBy:     req.AuthorizedBy,
		CompanyID:        claims.CompanyID,
		BranchID:         claims.BranchID,
		CreatedBy:        claims.UserID,
		Notes:            req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Log, "Entry recorded successfully")
}

func (h *DataCenterHandler) Update(c *gin.Context) {
	var req DataCenterLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateLogCommand{
		LogID:            c.Param("id"),
		VisitorName:      req.VisitorName,
		VisitorCompany:   req.VisitorCompany,
		ContactNumber:    req.ContactNumber,
		EntryTime:        req.EntryTime,
		Purpose:          req.Purpose,
		EquipmentBrought: req.EquipmentBrought,
		AuthorizedBy:     req.AuthorizedBy,
		Notes:            req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Log)
}

func (h *DataCenterHandler) RecordExit(c *gin.Context) {
	var req RecordExitRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.exitUseCase.Execute(c.Request.Context(), usecases.RecordExitCommand{
		LogID:    c.Param("id"),
		ExitTime: req.ExitTime,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Log)
}

func (h *DataCenterHandler) Get(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetLogCommand{
		LogID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Log)
}

func (h *DataCenterHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListLogsCommand{
		Scope: middleware.GetScope(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"logs":  result.Logs,
		"total": result.Total,
	})
}

func (h *DataCenterHandler) Delete(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	var actorID uint
	if claims != nil {
		actorID = claims.UserID
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteLogCommand{
		LogID:   c.Param("id"),
		ActorID: actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entry deleted successfully", nil)
}
