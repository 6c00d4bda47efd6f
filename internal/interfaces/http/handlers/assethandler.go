package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"datadesk/internal/application/asset/usecases"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/logger"
	"datadesk/internal/shared/utils"
)

type AssetHandler struct {
	createUseCase *usecases.CreateAssetUseCase
	updateUseCase *usecases.UpdateAssetUseCase
	getUseCase    *usecases.GetAssetUseCase
	listUseCase   *usecases.ListAssetsUseCase
	deleteUseCase *usecases.DeleteAssetUseCase
	searchUseCase *usecases.SearchAssetUseCase
	imagesUseCase *usecases.ManageAssetImagesUseCase
	logger        logger.Interface
}

func NewAssetHandler(
	createUC *usecases.CreateAssetUseCase,
	updateUC *usecases.UpdateAssetUseCase,
	getUC *usecases.GetAssetUseCase,
	listUC *usecases.ListAssetsUseCase,
	deleteUC *usecases.DeleteAssetUseCase,
	searchUC *usecases.SearchAssetUseCase,
	imagesUC *usecases.ManageAssetImagesUseCase,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		deleteUseCase: deleteUC,
		searchUseCase: searchUC,
		imagesUseCase: imagesUC,
		logger:        logger,
	}
}

type AssetRequest struct {
	AssetCode    string    `json:"asset_code" binding:"required"`
	SerialNumber string    `json:"serial_number" binding:"required"`
	Type         string    `json:"type" binding:"required"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	StartDate    time.Time `json:"start_date"`
	Location     string    `json:"location"`
	Department   *string   `json:"department"`
	IPAddress    *string   `json:"ip_address"`
	CompanyID    string    `json:"company_id"`
	BranchID     string    `json:"branch_id"`
	Responsible  string    `json:"responsible"`
	DiagramFile  *string   `json:"diagram_file"`
	Images       []string  `json:"images"`
}

type AssetImageRequest struct {
	Image string `json:"image" binding:"required"`
}

func (h *AssetHandler) Create(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	companyID := req.CompanyID
	branchID := req.BranchID
	if !claims.Role.IsSuperAdmin() {
		companyID = claims.CompanyID
		if branchID == "" {
			branchID = claims.BranchID
		}
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateAssetCommand{
		AssetCode:    req.AssetCode,
		SerialNumber: req.SerialNumber,
		Type:         req.Type,
		Brand:        req.Brand,
		Model:        req.Model,
		StartDate:    req.StartDate,
		Location:     req.Location,
		Department:   req.Department,
		IPAddress:    req.IPAddress,
		CompanyID:    companyID,
		BranchID:     branchID,
		Responsible:  req.Responsible,
		Images:       req.Images,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Asset, "Asset created successfully")
}

func (h *AssetHandler) Update(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateAssetCommand{
		AssetID:      c.Param("id"),
		AssetCode:    req.AssetCode,
		SerialNumber: req.SerialNumber,
		Type:         req.Type,
		Brand:        req.Brand,
		Model:        req.Model,
		StartDate:    req.StartDate,
		Location:     req.Location,
		Department:   req.Department,
		IPAddress:    req.IPAddress,
		Responsible:  req.Responsible,
		DiagramFile:  req.DiagramFile,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Asset)
}

func (h *AssetHandler) Get(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetAssetCommand{
		AssetID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Asset)
}

func (h *AssetHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListAssetsCommand{
		Scope: middleware.GetScope(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"assets": result.Assets,
		"total":  result.Total,
	})
}

func (h *AssetHandler) Delete(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	var actorID uint
	if claims != nil {
		actorID = claims.UserID
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteAssetCommand{
		AssetID: c.Param("id"),
		ActorID: actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset deleted successfully", nil)
}

// Search is the public serial lookup used by the ticket submission form.
func (h *AssetHandler) Search(c *gin.Context) {
	result, err := h.searchUseCase.Execute(c.Request.Context(), usecases.SearchAssetCommand{
		Key: c.Param("serialNumber"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Asset)
}

func (h *AssetHandler) AddImage(c *gin.Context) {
	var req AssetImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.imagesUseCase.Add(c.Request.Context(), usecases.AddAssetImageCommand{
		AssetID: c.Param("id"),
		Image:   req.Image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Asset)
}

func (h *AssetHandler) RemoveImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid image index")
		return
	}

	result, err := h.imagesUseCase.Remove(c.Request.Context(), usecases.RemoveAssetImageCommand{
		AssetID: c.Param("id"),
		Index:   index,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Asset)
}
