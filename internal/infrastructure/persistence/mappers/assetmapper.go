package mappers

import (
	"encoding/json"
	"fmt"

	"datadesk/internal/domain/asset"
	"datadesk/internal/infrastructure/persistence/models"
)

type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	model := &models.AssetModel{
		ID:           a.ID(),
		AssetCode:    a.AssetCode(),
		SerialNumber: a.SerialNumber(),
		Type:         a.Type(),
		Brand:        a.Brand(),
		Model:        a.Model(),
		StartDate:    a.StartDate().UnixMilli(),
		Location:     a.Location(),
		Department:   a.Department(),
		IPAddress:    a.IPAddress(),
		DiagramFile:  a.DiagramFile(),
		CompanyID:    a.CompanyID(),
		BranchID:     a.BranchID(),
		Responsible:  a.Responsible(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
		UpdatedAt:    a.UpdatedAt().UnixMilli(),
	}

	// Empty slices are stored as "[]" so the JSON column always holds
	// valid JSON.
	model.Images = marshalStringSlice(a.Images())

	return model
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	var images []string
	if model.Images != "" {
		if err := json.Unmarshal([]byte(model.Images), &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal asset images (id=%s): %w", model.ID, err)
		}
	}

	return asset.ReconstructAsset(
		model.ID,
		model.AssetCode,
		model.SerialNumber,
		model.Type,
		model.Brand,
		model.Model,
		millisToTime(model.StartDate),
		model.Location,
		model.Department,
		model.IPAddress,
		model.DiagramFile,
		images,
		model.CompanyID,
		model.BranchID,
		model.Responsible,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
