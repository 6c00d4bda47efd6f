package usecases

import (
	"context"

	"datadesk/internal/domain/asset"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// AddAssetImageCommand represents the input for attaching an image
type AddAssetImageCommand struct {
	AssetID string
	Image   string
}

// RemoveAssetImageCommand represents the input for removing an image by index
type RemoveAssetImageCommand struct {
	AssetID string
	Index   int
}

// ManageAssetImagesResult carries the asset after an image change
type ManageAssetImagesResult struct {
	Asset AssetDTO
}

// ManageAssetImagesUseCase adds and removes inline asset images
type ManageAssetImagesUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewManageAssetImagesUseCase(assetRepo asset.Repository, logger logger.Interface) *ManageAssetImagesUseCase {
	return &ManageAssetImagesUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *ManageAssetImagesUseCase) Add(ctx context.Context, cmd AddAssetImageCommand) (*ManageAssetImagesResult, error) {
	var missing []string
	if len(cmd.AssetID) == 0 {
		missing = append(missing, "asset_id")
	}
	if len(cmd.Image) == 0 {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	a, err := uc.assetRepo.FindByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}

	if err := a.AddImage(cmd.Image); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to add asset image", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	return &ManageAssetImagesResult{Asset: toAssetDTO(a)}, nil
}

func (uc *ManageAssetImagesUseCase) Remove(ctx context.Context, cmd RemoveAssetImageCommand) (*ManageAssetImagesResult, error) {
	if len(cmd.AssetID) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "asset_id")
	}

	a, err := uc.assetRepo.FindByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}

	if err := a.RemoveImage(cmd.Index); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to remove asset image", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	return &ManageAssetImagesResult{Asset: toAssetDTO(a)}, nil
}
