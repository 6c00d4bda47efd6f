package mappers

import (
	"datadesk/internal/domain/user"
	"datadesk/internal/infrastructure/persistence/models"
	"datadesk/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Username:  u.Username(),
		Name:      u.Name(),
		Email:     u.Email(),
		Password:  u.HashedPassword(),
		Role:      u.Role().String(),
		CompanyID: u.CompanyID(),
		BranchID:  u.BranchID(),
		CreatedAt: u.CreatedAt().UnixMilli(),
		UpdatedAt: u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Name,
		model.Email,
		model.Password,
		authorization.ParseUserRole(model.Role),
		model.CompanyID,
		model.BranchID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
