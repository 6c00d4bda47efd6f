package handlers

import (
	"github.com/gin-gonic/gin"

	"datadesk/internal/application/report/usecases"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type ReportHandler struct {
	dashboardUseCase *usecases.DashboardUseCase
	logger           logger.Interface
}

func NewReportHandler(dashboardUC *usecases.DashboardUseCase, logger logger.Interface) *ReportHandler {
	return &ReportHandler{
		dashboardUseCase: dashboardUC,
		logger:           logger,
	}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUseCase.Execute(c.Request.Context(), usecases.DashboardCommand{
		Scope: middleware.GetScope(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ReportHandler) TicketsByStatus(c *gin.Context) {
	counts, err := h.dashboardUseCase.TicketsByStatus(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"tickets_by_status": counts})
}

func (h *ReportHandler) TicketsByPriority(c *gin.Context) {
	counts, err := h.dashboardUseCase.TicketsByPriority(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"tickets_by_priority": counts})
}

func (h *ReportHandler) AssetsByType(c *gin.Context) {
	counts, err := h.dashboardUseCase.AssetsByType(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"assets_by_type": counts})
}
