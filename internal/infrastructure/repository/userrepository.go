package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/user"
	"datadesk/internal/infrastructure/persistence/mappers"
	"datadesk/internal/infrastructure/persistence/models"
	"datadesk/internal/shared/authorization"
	db "datadesk/internal/shared/db"
	apperrors "datadesk/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, scope authorization.Scope) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []models.UserModel
	if err := tx.
		Model(&models.UserModel{}).
		Scopes(scope.CompanyScope()).
		Order("id ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.toDomainList(userModels)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) FindSuperAdmins(ctx context.Context) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []models.UserModel
	if err := tx.
		Where("role = ?", authorization.RoleSuperAdmin.String()).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find super admins: %w", err)
	}

	return r.toDomainList(userModels)
}

func (r *UserRepository) FindStaffByBranch(ctx context.Context, companyID, branchID string) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	staffRoles := []string{
		authorization.RoleAdmin.String(),
		authorization.RoleHelpdesk.String(),
		authorization.RoleTechnician.String(),
	}

	var userModels []models.UserModel
	if err := tx.
		Where("company_id = ? AND branch_id = ? AND role IN ?", companyID, branchID, staffRoles).
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find branch staff: %w", err)
	}

	return r.toDomainList(userModels)
}

func (r *UserRepository) toDomainList(userModels []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, len(userModels))
	for i, model := range userModels {
		u, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}
