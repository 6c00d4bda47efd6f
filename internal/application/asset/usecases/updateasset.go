package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/asset"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// UpdateAssetCommand represents the input for updating an asset
type UpdateAssetCommand struct {
	AssetID      string
	AssetCode    string
	SerialNumber string
	Type         string
	Brand        string
	Model        string
	StartDate    time.Time
	Location     string
	Department   *string
	IPAddress    *string
	Responsible  string
	DiagramFile  *string
}

// UpdateAssetResult represents the output of updating an asset
type UpdateAssetResult struct {
	Asset AssetDTO
}

// UpdateAssetUseCase handles asset updates
type UpdateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewUpdateAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*UpdateAssetResult, error) {
	var missing []string
	if len(cmd.AssetID) == 0 {
		missing = append(missing, "asset_id")
	}
	if len(cmd.AssetCode) == 0 {
		missing = append(missing, "asset_code")
	}
	if len(cmd.SerialNumber) == 0 {
		missing = append(missing, "serial_number")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	a, err := uc.assetRepo.FindByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}

	if err := a.Update(
		cmd.AssetCode, cmd.SerialNumber, cmd.Type, cmd.Brand, cmd.Model,
		cmd.StartDate, cmd.Location, cmd.Department, cmd.IPAddress, cmd.Responsible,
	); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.DiagramFile != nil {
		a.SetDiagramFile(cmd.DiagramFile)
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update asset", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("asset updated", "asset_id", a.ID())

	return &UpdateAssetResult{Asset: toAssetDTO(a)}, nil
}
