package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datadesk/internal/application/auth/usecases"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase       *usecases.LoginUseCase
	currentUserUseCase *usecases.GetCurrentUserUseCase
	logger             logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	currentUserUC *usecases.GetCurrentUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:       loginUC,
		currentUserUseCase: currentUserUC,
		logger:             logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

// Logout is a client-side operation with stateless tokens; the endpoint
// exists so clients have a uniform call to end a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.currentUserUseCase.Execute(c.Request.Context(), usecases.GetCurrentUserCommand{
		UserID: claims.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.User)
}
