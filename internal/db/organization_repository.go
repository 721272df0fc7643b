package db

import (
	"context"

	"github.com/terraincognita07/worktime/internal/models"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	database *gorm.DB
}

func NewOrganizationRepository(database *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{database: database}
}

func (repo *OrganizationRepository) FindByID(ctx context.Context, organizationID uint) (models.Organization, error) {
	var organization models.Organization
	if err := repo.database.WithContext(ctx).First(&organization, organizationID).Error; err != nil {
		return models.Organization{}, err
	}
	return organization, nil
}

func (repo *OrganizationRepository) List(ctx context.Context) ([]models.Organization, error) {
	organizations := make([]models.Organization, 0)
	if err := repo.database.WithContext(ctx).Order("id ASC").Find(&organizations).Error; err != nil {
		return nil, err
	}
	return organizations, nil
}

func (repo *OrganizationRepository) Create(ctx context.Context, organization *models.Organization) error {
	return repo.database.WithContext(ctx).Create(organization).Error
}
