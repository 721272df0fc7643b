package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert violates a unique constraint.
// It aliases gorm's sentinel so callers can match it without importing db.
var ErrDuplicateKey = gorm.ErrDuplicatedKey

type Repositories struct {
	Users         *UserRepository
	Organizations *OrganizationRepository
	Shifts        *ShiftRepository
	WorkTimes     *WorkTimeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Organizations: NewOrganizationRepository(database),
		Shifts:        NewShiftRepository(database),
		WorkTimes:     NewWorkTimeRepository(database),
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint") ||
		strings.Contains(message, "duplicate key") ||
		strings.Contains(message, "sqlstate 23505")
}

func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}
