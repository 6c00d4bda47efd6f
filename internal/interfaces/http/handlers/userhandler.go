package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"datadesk/internal/application/user/usecases"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type UserHandler struct {
	createUseCase *usecases.CreateUserUseCase
	updateUseCase *usecases.UpdateUserUseCase
	getUseCase    *usecases.GetUserUseCase
	listUseCase   *usecases.ListUsersUseCase
	deleteUseCase *usecases.DeleteUserUseCase
	logger        logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	updateUC *usecases.UpdateUserUseCase,
	getUC *usecases.GetUserUseCase,
	listUC *usecases.ListUsersUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	BranchID  string `json:"branch_id"`
}

type UpdateUserRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Role      *string `json:"role"`
	CompanyID *string `json:"company_id"`
	BranchID  *string `json:"branch_id"`
	Password  *string `json:"password"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	// Company admins create users inside their own company only
	companyID := req.CompanyID
	branchID := req.BranchID
	if !claims.Role.IsSuperAdmin() {
		companyID = claims.CompanyID
		if branchID == "" {
			branchID = claims.BranchID
		}
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username:  req.Username,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		CompanyID: companyID,
		BranchID:  branchID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.User, "User created successfully")
}

func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		CompanyID: req.CompanyID,
		BranchID:  req.BranchID,
		Password:  req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.User)
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetUserCommand{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.User)
}

func (h *UserHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Scope: middleware.GetScope(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"users": result.Users,
		"total": result.Total,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	claims, _ := middleware.GetClaims(c)

	var actorID uint
	if claims != nil {
		actorID = claims.UserID
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:  userID,
		ActorID: actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
