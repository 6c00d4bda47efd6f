package mappers

import (
	"datadesk/internal/domain/datacenter"
	"datadesk/internal/infrastructure/persistence/models"
)

type DataCenterLogMapper interface {
	ToModel(l *datacenter.Log) *models.DataCenterLogModel
	ToDomain(model *models.DataCenterLogModel) (*datacenter.Log, error)
}

type DataCenterLogMapperImpl struct{}

func NewDataCenterLogMapper() DataCenterLogMapper {
	return &DataCenterLogMapperImpl{}
}

func (m *DataCenterLogMapperImpl) ToModel(l *datacenter.Log) *models.DataCenterLogModel {
	return &models.DataCenterLogModel{
		ID:               l.ID(),
		VisitorName:      l.VisitorName(),
		VisitorCompany:   l.VisitorCompany(),
		ContactNumber:    l.ContactNumber(),
		EntryTime:        l.EntryTime().UnixMilli(),
		ExitTime:         timePtrToMillis(l.ExitTime()),
		Purpose:          l.Purpose(),
		EquipmentBrought: l.EquipmentBrought(),
		AuthorizedBy:     l.AuthorizedBy(),
		CompanyID:        l.CompanyID(),
		BranchID:         l.BranchID(),
		CreatedBy:        l.CreatedBy(),
		Notes:            l.Notes(),
		CreatedAt:        l.CreatedAt().UnixMilli(),
		UpdatedAt:        l.UpdatedAt().UnixMilli(),
	}
}

func (m *DataCenterLogMapperImpl) ToDomain(model *models.DataCenterLogModel) (*datacenter.Log, error) {
	return datacenter.ReconstructLog(
		model.ID,
		model.VisitorName,
		model.VisitorCompany,
		model.ContactNumber,
		millisToTime(model.EntryTime),
		millisPtrToTime(model.ExitTime),
		model.Purpose,
		model.EquipmentBrought,
		model.AuthorizedBy,
		model.CompanyID,
		model.BranchID,
		model.CreatedBy,
		model.Notes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
