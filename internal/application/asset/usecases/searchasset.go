package usecases

import (
	"context"
	"strings"

	"datadesk/internal/domain/asset"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// SearchAssetCommand represents the input for the public asset lookup
type SearchAssetCommand struct {
	Key string
}

// SearchAssetResult represents the output of the public asset lookup
type SearchAssetResult struct {
	Asset AssetDTO
}

// SearchAssetUseCase resolves an asset by serial number or asset code for
// the unauthenticated lookup used by the ticket submission form.
type SearchAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewSearchAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *SearchAssetUseCase {
	return &SearchAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *SearchAssetUseCase) Execute(ctx context.Context, cmd SearchAssetCommand) (*SearchAssetResult, error) {
	key := strings.TrimSpace(cmd.Key)
	if len(key) == 0 {
		return nil, apperrors.NewFieldValidationError("missing required fields", "serial_number")
	}

	a, err := uc.assetRepo.FindBySerialOrCode(ctx, key)
	if err != nil {
		return nil, err
	}

	return &SearchAssetResult{Asset: toAssetDTO(a)}, nil
}
