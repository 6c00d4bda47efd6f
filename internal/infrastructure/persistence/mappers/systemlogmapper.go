package mappers

import (
	"datadesk/internal/domain/systemlog"
	"datadesk/internal/infrastructure/persistence/models"
)

type SystemLogMapper interface {
	ToModel(e *systemlog.Entry) *models.SystemLogModel
	ToDomain(model *models.SystemLogModel) *systemlog.Entry
}

type SystemLogMapperImpl struct{}

func NewSystemLogMapper() SystemLogMapper {
	return &SystemLogMapperImpl{}
}

func (m *SystemLogMapperImpl) ToModel(e *systemlog.Entry) *models.SystemLogModel {
	return &models.SystemLogModel{
		ID:          e.ID(),
		UserID:      e.UserID(),
		UserName:    e.UserName(),
		CompanyID:   e.CompanyID(),
		CompanyName: e.CompanyName(),
		Action:      e.Action(),
		Module:      e.Module(),
		Description: e.Description(),
		IPAddress:   e.IPAddress(),
		UserAgent:   e.UserAgent(),
		CreatedAt:   e.CreatedAt().UnixMilli(),
	}
}

func (m *SystemLogMapperImpl) ToDomain(model *models.SystemLogModel) *systemlog.Entry {
	return systemlog.ReconstructEntry(
		model.ID,
		model.UserID,
		model.UserName,
		model.CompanyID,
		model.CompanyName,
		model.Action,
		model.Module,
		model.Description,
		model.IPAddress,
		model.UserAgent,
		millisToTime(model.CreatedAt),
	)
}
