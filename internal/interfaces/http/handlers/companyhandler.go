package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"datadesk/internal/application/company/usecases"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type CompanyHandler struct {
	createUseCase       *usecases.CreateCompanyUseCase
	updateUseCase       *usecases.UpdateCompanyUseCase
	getUseCase          *usecases.GetCompanyUseCase
	listUseCase         *usecases.ListCompaniesUseCase
	deleteUseCase       *usecases.DeleteCompanyUseCase
	createBranchUseCase *usecases.CreateBranchUseCase
	updateBranchUseCase *usecases.UpdateBranchUseCase
	listBranchesUseCase *usecases.ListBranchesUseCase
	deleteBranchUseCase *usecases.DeleteBranchUseCase
	logger              logger.Interface
}

func NewCompanyHandler(
	createUC *usecases.CreateCompanyUseCase,
	updateUC *usecases.UpdateCompanyUseCase,
	getUC *usecases.GetCompanyUseCase,
	listUC *usecases.ListCompaniesUseCase,
	deleteUC *usecases.DeleteCompanyUseCase,
	createBranchUC *usecases.CreateBranchUseCase,
	updateBranchUC *usecases.UpdateBranchUseCase,
	listBranchesUC *usecases.ListBranchesUseCase,
	deleteBranchUC *usecases.DeleteBranchUseCase,
	logger logger.Interface,
) *CompanyHandler {
	return &CompanyHandler{
		createUseCase:       createUC,
		updateUseCase:       updateUC,
		getUseCase:          getUC,
		listUseCase:         listUC,
		deleteUseCase:       deleteUC,
		createBranchUseCase: createBranchUC,
		updateBranchUseCase: updateBranchUC,
		listBranchesUseCase: listBranchesUC,
		deleteBranchUseCase: deleteBranchUC,
		logger:              logger,
	}
}

type CompanyRequest struct {
	Name              string     `json:"name" binding:"required"`
	Logo              *string    `json:"logo"`
	LineToken         *string    `json:"line_token"`
	TelegramToken     *string    `json:"telegram_token"`
	NotificationEmail *string    `json:"notification_email"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	ClearExpiryDate   bool       `json:"clear_expiry_date"`
}

type BranchRequest struct {
	Name            string  `json:"name" binding:"required"`
	TicketPrefix    *string `json:"ticket_prefix"`
	TechnicianEmail *string `json:"technician_email"`
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateCompanyCommand{
		Name:              req.Name,
		Logo:              req.Logo,
		LineToken:         req.LineToken,
		TelegramToken:     req.TelegramToken,
		NotificationEmail: req.NotificationEmail,
		ExpiryDate:        req.ExpiryDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Company, "Company created successfully")
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateCompanyCommand{
		CompanyID:         c.Param("id"),
		Name:              req.Name,
		Logo:              req.Logo,
		LineToken:         req.LineToken,
		TelegramToken:     req.TelegramToken,
		NotificationEmail: req.NotificationEmail,
		ExpiryDate:        req.ExpiryDate,
		ClearExpiryDate:   req.ClearExpiryDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Company)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetCompanyCommand{
		CompanyID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"company":  result.Company,
		"branches": result.Branches,
	})
}

func (h *CompanyHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListCompaniesCommand{
		Scope: middleware.GetScope(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"companies": result.Companies,
		"total":     result.Total,
	})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	var actorID uint
	if claims != nil {
		actorID = claims.UserID
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteCompanyCommand{
		CompanyID: c.Param("id"),
		ActorID:   actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company deleted successfully", nil)
}

func (h *CompanyHandler) CreateBranch(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createBranchUseCase.Execute(c.Request.Context(), usecases.CreateBranchCommand{
		CompanyID:       c.Param("id"),
		Name:            req.Name,
		TicketPrefix:    req.TicketPrefix,
		TechnicianEmail: req.TechnicianEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Branch, "Branch created successfully")
}

func (h *CompanyHandler) UpdateBranch(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateBranchUseCase.Execute(c.Request.Context(), usecases.UpdateBranchCommand{
		BranchID:        c.Param("branchId"),
		Name:            req.Name,
		TicketPrefix:    req.TicketPrefix,
		TechnicianEmail: req.TechnicianEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Branch)
}

func (h *CompanyHandler) ListBranches(c *gin.Context) {
	result, err := h.listBranchesUseCase.Execute(c.Request.Context(), usecases.ListBranchesCommand{
		CompanyID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"branches": result.Branches,
		"total":    result.Total,
	})
}

func (h *CompanyHandler) DeleteBranch(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	var actorID uint
	if claims != nil {
		actorID = claims.UserID
	}

	if err := h.deleteBranchUseCase.Execute(c.Request.Context(), usecases.DeleteBranchCommand{
		BranchID: c.Param("branchId"),
		ActorID:  actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Branch deleted successfully", nil)
}
