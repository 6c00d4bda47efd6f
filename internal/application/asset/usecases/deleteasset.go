package usecases

import (
	"context"

	"datadesk/internal/domain/asset"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// DeleteAssetCommand represents the input for deleting an asset
type DeleteAssetCommand struct {
	AssetID string
	ActorID uint
}

// DeleteAssetUseCase handles asset deletion
type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewDeleteAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *DeleteAssetUseCase) Execute(ctx context.Context, cmd DeleteAssetCommand) error {
	if len(cmd.AssetID) == 0 {
		return apperrors.NewFieldValidationError("missing required fields", "asset_id")
	}

	if err := uc.assetRepo.Delete(ctx, cmd.AssetID); err != nil {
		uc.logger.Errorw("failed to delete asset", "asset_id", cmd.AssetID, "error", err)
		return err
	}

	uc.logger.Infow("asset deleted", "asset_id", cmd.AssetID, "deleted_by", cmd.ActorID)

	return nil
}
