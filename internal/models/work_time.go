package models

import "time"

// WorkDateLayout is the layout of WorkTime.WorkDate.
const WorkDateLayout = "2006-01-02"

// WorkTime is one attendance interval. A nil EndTime marks an open record.
type WorkTime struct {
	ID             uint          `gorm:"primaryKey"`
	UserID         *uint         `gorm:"uniqueIndex:uidx_work_times_user_org_day"`
	User           *User         `gorm:"constraint:OnDelete:SET NULL;"`
	OrganizationID *uint         `gorm:"uniqueIndex:uidx_work_times_user_org_day"`
	Organization   *Organization `gorm:"constraint:OnDelete:SET NULL;"`
	WorkDate       string        `gorm:"type:varchar(10);not null;uniqueIndex:uidx_work_times_user_org_day"`
	StartTime      time.Time     `gorm:"not null"`
	EndTime        *time.Time
	CreatedAt      time.Time `gorm:"not null"`
}

func (entry WorkTime) IsOpen() bool {
	return entry.EndTime == nil
}

// Duration returns the elapsed time of a closed record.
func (entry WorkTime) Duration() (time.Duration, bool) {
	if entry.EndTime == nil {
		return 0, false
	}
	elapsed := entry.EndTime.Sub(entry.StartTime)
	if elapsed < 0 {
		return 0, true
	}
	return elapsed, true
}
