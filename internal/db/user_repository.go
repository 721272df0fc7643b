package db

import (
	"context"
	"fmt"

	"github.com/terraincognita07/worktime/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(ctx context.Context, userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.WithContext(ctx).First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := repo.database.WithContext(ctx).Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(ctx context.Context, email string) (bool, error) {
	var matched int64
	if err := repo.database.WithContext(ctx).Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(ctx context.Context, user *models.User) error {
	// Active defaults to true in the schema, so a false value must be written
	// explicitly after the insert.
	active := user.Active
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Organizations").Create(user).Error; err != nil {
			return err
		}
		if !active {
			return tx.Model(&models.User{}).Where("id = ?", user.ID).Update("active", false).Error
		}
		return nil
	})
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return err
}

func (repo *UserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	return repo.database.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}

func (repo *UserRepository) UpdateFlags(ctx context.Context, userID uint, active bool, staff bool, admin bool) error {
	return repo.database.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"active": active,
		"staff":  staff,
		"admin":  admin,
	}).Error
}

func (repo *UserRepository) AddOrganization(ctx context.Context, userID uint, organizationID uint) error {
	err := repo.database.WithContext(ctx).Exec(
		`INSERT INTO user_organizations(user_id, organization_id) VALUES (?, ?)`,
		userID,
		organizationID,
	).Error
	if isUniqueViolation(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("add organization membership: %w", err)
	}
	return nil
}

func (repo *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	query := repo.database.WithContext(ctx).Model(&models.User{})
	if filter.OrganizationID != 0 {
		query = query.Where("id IN (?)", repo.database.Table("user_organizations").
			Select("user_id").
			Where("organization_id = ?", filter.OrganizationID))
	}
	if filter.OrganizationName != "" {
		query = query.Where("id IN (?)", repo.database.Table("user_organizations").
			Select("user_organizations.user_id").
			Joins("JOIN organizations ON organizations.id = user_organizations.organization_id").
			Where("organizations.name = ?", filter.OrganizationName))
	}
	if filter.WorkDate != "" {
		query = query.Where("id IN (?)", repo.database.Table("work_times").
			Select("user_id").
			Where("work_date = ? AND user_id IS NOT NULL", filter.WorkDate))
	}
	for _, term := range filter.SearchTerms {
		pattern := likePattern(term)
		query = query.Where(
			`(lower(email) LIKE ? ESCAPE '\' OR lower(first_name) LIKE ? ESCAPE '\' OR lower(last_name) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}

	users := make([]models.User, 0)
	if err := query.
		Preload("Organizations", func(db *gorm.DB) *gorm.DB {
			return db.Order("organizations.id ASC")
		}).
		Order("id DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
