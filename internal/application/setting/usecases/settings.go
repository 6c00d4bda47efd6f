package usecases

import (
	"context"

	"datadesk/internal/domain/setting"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// SettingDTO is the wire representation of one system setting.
type SettingDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ListSettingsResult represents all stored settings
type ListSettingsResult struct {
	Settings []SettingDTO
}

// UpdateSettingCommand represents the input for writing a setting
type UpdateSettingCommand struct {
	Key   string
	Value string
}

// SettingsUseCase reads and writes runtime system settings
type SettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *SettingsUseCase {
	return &SettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *SettingsUseCase) List(ctx context.Context) (*ListSettingsResult, error) {
	settings, err := uc.settingRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err)
		return nil, err
	}

	dtos := make([]SettingDTO, 0, len(settings))
	for _, s := range settings {
		dtos = append(dtos, SettingDTO{Key: s.Key, Value: s.Value})
	}

	return &ListSettingsResult{Settings: dtos}, nil
}

func (uc *SettingsUseCase) Update(ctx context.Context, cmd UpdateSettingCommand) error {
	if len(cmd.Key) == 0 {
		return apperrors.NewFieldValidationError("missing required fields", "key")
	}

	if err := uc.settingRepo.Set(ctx, cmd.Key, cmd.Value); err != nil {
		uc.logger.Errorw("failed to update setting", "key", cmd.Key, "error", err)
		return err
	}

	uc.logger.Infow("setting updated", "key", cmd.Key, "value", cmd.Value)

	return nil
}
