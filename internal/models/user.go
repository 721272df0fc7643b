package models

import "time"

type User struct {
	ID            uint           `gorm:"primaryKey"`
	FirstName     string         `gorm:"not null;default:''"`
	LastName      string         `gorm:"not null;default:''"`
	Email         string         `gorm:"uniqueIndex;not null"`
	PasswordHash  string         `gorm:"not null"`
	Active        bool           `gorm:"not null;default:true"`
	Staff         bool           `gorm:"not null;default:false"`
	Admin         bool           `gorm:"not null;default:false"`
	Organizations []Organization `gorm:"many2many:user_organizations;"`
	CreatedAt     time.Time      `gorm:"not null"`
}

// IsStaffOrAdmin reports whether the user may use the administrator surface.
func (user User) IsStaffOrAdmin() bool {
	return user.Staff || user.Admin
}
