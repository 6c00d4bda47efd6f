package usecases

import (
	"context"
	"time"

	"datadesk/internal/domain/asset"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// CreateAssetCommand represents the input for registering an asset
type CreateAssetCommand struct {
	AssetCode    string
	SerialNumber string
	Type         string
	Brand        string
	Model        string
	StartDate    time.Time
	Location     string
	Department   *string
	IPAddress    *string
	CompanyID    string
	BranchID     string
	Responsible  string
	Images       []string
}

// CreateAssetResult represents the output of registering an asset
type CreateAssetResult struct {
	Asset AssetDTO
}

// CreateAssetUseCase handles asset registration
type CreateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewCreateAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*CreateAssetResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	a, err := asset.NewAsset(
		cmd.AssetCode,
		cmd.SerialNumber,
		cmd.Type,
		cmd.Brand,
		cmd.Model,
		cmd.StartDate,
		cmd.Location,
		cmd.CompanyID,
		cmd.BranchID,
		cmd.Responsible,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.Department != nil || cmd.IPAddress != nil {
		if err := a.Update(
			cmd.AssetCode, cmd.SerialNumber, cmd.Type, cmd.Brand, cmd.Model,
			cmd.StartDate, cmd.Location, cmd.Department, cmd.IPAddress, cmd.Responsible,
		); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	for _, img := range cmd.Images {
		if err := a.AddImage(img); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.assetRepo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to create asset",
			"asset_code", cmd.AssetCode,
			"company_id", cmd.CompanyID,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("asset created",
		"asset_id", a.ID(),
		"asset_code", a.AssetCode(),
		"company_id", a.CompanyID(),
	)

	return &CreateAssetResult{Asset: toAssetDTO(a)}, nil
}

func (uc *CreateAssetUseCase) validateCommand(cmd CreateAssetCommand) error {
	var missing []string

	if len(cmd.AssetCode) == 0 {
		missing = append(missing, "asset_code")
	}
	if len(cmd.SerialNumber) == 0 {
		missing = append(missing, "serial_number")
	}
	if len(cmd.Type) == 0 {
		missing = append(missing, "type")
	}
	if len(cmd.CompanyID) == 0 {
		missing = append(missing, "company_id")
	}
	if len(cmd.BranchID) == 0 {
		missing = append(missing, "branch_id")
	}

	if len(missing) > 0 {
		return apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	return nil
}
