package models

import "time"

type Organization struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
}

// OrganizationWorkTime is a named shift template. Start and end are
// time-of-day values stored as "HH:MM".
type OrganizationWorkTime struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrganizationID uint          `gorm:"not null;index" json:"organization"`
	Organization   *Organization `json:"-"`
	Name           string        `gorm:"not null" json:"name"`
	StartTime      string        `gorm:"not null" json:"start_time"`
	EndTime        string        `gorm:"not null" json:"end_time"`
}
