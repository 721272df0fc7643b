package db

import (
	"context"

	"github.com/terraincognita07/worktime/internal/models"
	"gorm.io/gorm"
)

type ShiftRepository struct {
	database *gorm.DB
}

func NewShiftRepository(database *gorm.DB) *ShiftRepository {
	return &ShiftRepository{database: database}
}

func (repo *ShiftRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]models.OrganizationWorkTime, error) {
	shifts := make([]models.OrganizationWorkTime, 0)
	if err := repo.database.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("start_time ASC, id ASC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (repo *ShiftRepository) Create(ctx context.Context, shift *models.OrganizationWorkTime) error {
	return repo.database.WithContext(ctx).Omit("Organization").Create(shift).Error
}
