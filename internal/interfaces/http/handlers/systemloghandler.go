package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"datadesk/internal/application/systemlog/usecases"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type SystemLogHandler struct {
	listUseCase *usecases.ListSystemLogsUseCase
	logger      logger.Interface
}

func NewSystemLogHandler(listUC *usecases.ListSystemLogsUseCase, logger logger.Interface) *SystemLogHandler {
	return &SystemLogHandler{
		listUseCase: listUC,
		logger:      logger,
	}
}

func (h *SystemLogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListSystemLogsCommand{
		Limit: limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"logs": result.Entries})
}
