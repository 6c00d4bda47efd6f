package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datadesk/internal/application/setting/usecases"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type SettingHandler struct {
	settingsUseCase *usecases.SettingsUseCase
	logger          logger.Interface
}

func NewSettingHandler(settingsUC *usecases.SettingsUseCase, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		settingsUseCase: settingsUC,
		logger:          logger,
	}
}

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func (h *SettingHandler) List(c *gin.Context) {
	result, err := h.settingsUseCase.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"settings": result.Settings})
}

func (h *SettingHandler) Update(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.settingsUseCase.Update(c.Request.Context(), usecases.UpdateSettingCommand{
		Key:   req.Key,
		Value: req.Value,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting updated successfully", nil)
}
