package db

import (
	"context"
	"time"

	"github.com/terraincognita07/worktime/internal/models"
	"gorm.io/gorm"
)

type WorkTimeRepository struct {
	database *gorm.DB
}

func NewWorkTimeRepository(database *gorm.DB) *WorkTimeRepository {
	return &WorkTimeRepository{database: database}
}

func (repo *WorkTimeRepository) FindForDay(ctx context.Context, userID uint, organizationID uint, workDate string) (models.WorkTime, bool, error) {
	entry := models.WorkTime{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND organization_id = ? AND work_date = ?", userID, organizationID, workDate).
		Order("id ASC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WorkTime{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkTime{}, false, nil
	}
	return entry, true, nil
}

// Create inserts an open record. ErrDuplicateKey means another request already
// opened the day for the same user and organization.
func (repo *WorkTimeRepository) Create(ctx context.Context, entry *models.WorkTime) error {
	err := repo.database.WithContext(ctx).Omit("User", "Organization").Create(entry).Error
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return err
}

// Close sets the end time only while the record is still open and reports
// whether this call performed the transition.
func (repo *WorkTimeRepository) Close(ctx context.Context, entryID uint, endTime time.Time) (bool, error) {
	result := repo.database.WithContext(ctx).
		Model(&models.WorkTime{}).
		Where("id = ? AND end_time IS NULL", entryID).
		Update("end_time", endTime)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (repo *WorkTimeRepository) List(ctx context.Context, filter models.WorkTimeFilter) ([]models.WorkTime, error) {
	query := repo.database.WithContext(ctx).Model(&models.WorkTime{})
	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.OrganizationName != "" {
		query = query.Where("organization_id IN (?)", repo.database.Model(&models.Organization{}).
			Select("id").
			Where("name = ?", filter.OrganizationName))
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.WorkDate != "" {
		query = query.Where("work_date = ?", filter.WorkDate)
	}
	if filter.FromDate != "" {
		query = query.Where("work_date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		query = query.Where("work_date < ?", filter.ToDate)
	}

	entries := make([]models.WorkTime, 0)
	if err := query.Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
