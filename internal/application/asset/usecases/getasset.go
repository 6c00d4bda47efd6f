package usecases

import (
	"context"

	"datadesk/internal/domain/asset"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// GetAssetCommand represents the input for fetching an asset
type GetAssetCommand struct {
	AssetID string
}

// GetAssetResult represents the output of fetching an asset
type GetAssetResult struct {
	Asset AssetDTO
}

// GetAssetUseCase handles fetching a single asset
type GetAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewGetAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, cmd GetAssetCommand) (*GetAssetResult, error) {
	if len(cmd.AssetID) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "asset_id")
	}

	a, err := uc.assetRepo.FindByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}

	return &GetAssetResult{Asset: toAssetDTO(a)}, nil
}
