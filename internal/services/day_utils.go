package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/worktime/internal/models"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// WorkDate returns the calendar day of value in location as stored in
// work_times.work_date.
func WorkDate(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(models.WorkDateLayout)
}

// ParseWorkDate validates an optional date filter. Empty input is allowed.
func ParseWorkDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	parsed, err := time.Parse(models.WorkDateLayout, trimmed)
	if err != nil {
		return "", ErrInvalidDate
	}
	return parsed.Format(models.WorkDateLayout), nil
}

// MonthRange returns the first day of the month and of the following month.
func MonthRange(year int, month time.Month) (string, string) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start.Format(models.WorkDateLayout), start.AddDate(0, 1, 0).Format(models.WorkDateLayout)
}

func parsePeriod(yearRaw string, monthRaw string) (int, time.Month, error) {
	yearRaw = strings.TrimSpace(yearRaw)
	monthRaw = strings.TrimSpace(monthRaw)
	if yearRaw == "" || monthRaw == "" {
		return 0, 0, ErrPeriodRequired
	}
	year, err := strconv.Atoi(yearRaw)
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, ErrInvalidPeriod
	}
	month, err := strconv.Atoi(monthRaw)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ErrInvalidPeriod
	}
	return year, time.Month(month), nil
}

// FormatDuration renders whole hours, days included, and remaining minutes.
func FormatDuration(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}
	hours := int64(duration / time.Hour)
	minutes := int64((duration % time.Hour) / time.Minute)
	return fmt.Sprintf("%d hours, %d minutes", hours, minutes)
}
