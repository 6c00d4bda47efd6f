package mappers

import (
	"datadesk/internal/domain/company"
	"datadesk/internal/infrastructure/persistence/models"
)

// CompanyMapper converts between company/branch entities and persistence models.
type CompanyMapper interface {
	ToModel(c *company.Company) *models.CompanyModel
	ToDomain(model *models.CompanyModel) (*company.Company, error)
	BranchToModel(b *company.Branch) *models.BranchModel
	BranchToDomain(model *models.BranchModel) (*company.Branch, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *company.Company) *models.CompanyModel {
	return &models.CompanyModel{
		ID:                c.ID(),
		Name:              c.Name(),
		Logo:              c.Logo(),
		LineToken:         c.LineToken(),
		TelegramToken:     c.TelegramToken(),
		NotificationEmail: c.NotificationEmail(),
		ExpiryDate:        timePtrToMillis(c.ExpiryDate()),
		CreatedAt:         c.CreatedAt().UnixMilli(),
		UpdatedAt:         c.UpdatedAt().UnixMilli(),
	}
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	return company.ReconstructCompany(
		model.ID,
		model.Name,
		model.Logo,
		model.LineToken,
		model.TelegramToken,
		model.NotificationEmail,
		millisPtrToTime(model.ExpiryDate),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *CompanyMapperImpl) BranchToModel(b *company.Branch) *models.BranchModel {
	return &models.BranchModel{
		ID:              b.ID(),
		Name:            b.Name(),
		CompanyID:       b.CompanyID(),
		TicketPrefix:    b.TicketPrefix(),
		TechnicianEmail: b.TechnicianEmail(),
		CreatedAt:       b.CreatedAt().UnixMilli(),
		UpdatedAt:       b.UpdatedAt().UnixMilli(),
	}
}

func (m *CompanyMapperImpl) BranchToDomain(model *models.BranchModel) (*company.Branch, error) {
	return company.ReconstructBranch(
		model.ID,
		model.Name,
		model.CompanyID,
		model.TicketPrefix,
		model.TechnicianEmail,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
