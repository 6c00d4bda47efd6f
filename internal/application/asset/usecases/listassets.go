package usecases

import (
	"context"

	"datadesk/internal/domain/asset"
	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

// ListAssetsCommand represents the input for listing assets
type ListAssetsCommand struct {
	Scope authorization.Scope
}

// ListAssetsResult represents the output of listing assets
type ListAssetsResult struct {
	Assets []AssetDTO
	Total  int
}

// ListAssetsUseCase handles scoped asset listings
type ListAssetsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewListAssetsUseCase(assetRepo asset.Repository, logger logger.Interface) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, cmd ListAssetsCommand) (*ListAssetsResult, error) {
	assets, err := uc.assetRepo.List(ctx, cmd.Scope)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "company_id", cmd.Scope.CompanyID, "error", err)
		return nil, err
	}

	dtos := make([]AssetDTO, 0, len(assets))
	for _, a := range assets {
		dtos = append(dtos, toAssetDTO(a))
	}

	return &ListAssetsResult{
		Assets: dtos,
		Total:  len(dtos),
	}, nil
}
