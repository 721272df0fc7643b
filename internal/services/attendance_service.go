package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/worktime/internal/models"
)

type AttendanceWorkTimeRepository interface {
	FindForDay(ctx context.Context, userID uint, organizationID uint, workDate string) (models.WorkTime, bool, error)
	Create(ctx context.Context, entry *models.WorkTime) error
	Close(ctx context.Context, entryID uint, endTime time.Time) (bool, error)
	List(ctx context.Context, filter models.WorkTimeFilter) ([]models.WorkTime, error)
}

type AttendanceUserRepository interface {
	FindByNormalizedEmail(ctx context.Context, email string) (models.User, error)
}

type CheckInAction string

const (
	CheckInEntered CheckInAction = "enter"
	CheckInExited  CheckInAction = "exit"
)

type CheckInResult struct {
	Action CheckInAction
	Entry  models.WorkTime
}

func (result CheckInResult) Message() string {
	if result.Action == CheckInExited {
		return "Exit time registered"
	}
	return "Enter time registered"
}

type MonthlyTotalInput struct {
	UserEmail string
	Year      string
	Month     string
}

type MonthlyTotal struct {
	User         models.User
	Organization models.Organization
	Year         int
	Month        time.Month
	Duration     time.Duration
	Records      int
	OpenRecords  int
}

// WorkTimeQuery filters attendance listings. Date is YYYY-MM-DD.
type WorkTimeQuery struct {
	OrganizationName string
	OrganizationID   uint
	Date             string
}

type AttendanceService struct {
	workTimes     AttendanceWorkTimeRepository
	organizations OrganizationLookup
	users         AttendanceUserRepository
	location      *time.Location
	now           func() time.Time
}

func NewAttendanceService(workTimes AttendanceWorkTimeRepository, organizations OrganizationLookup, users AttendanceUserRepository, location *time.Location) *AttendanceService {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceService{
		workTimes:     workTimes,
		organizations: organizations,
		users:         users,
		location:      location,
		now:           time.Now,
	}
}

// SetClock replaces the time source used for check-ins.
func (service *AttendanceService) SetClock(now func() time.Time) {
	if now != nil {
		service.now = now
	}
}

// CheckIn toggles the caller's attendance for today. The unique
// (user, organization, work_date) key and the conditional close make the
// toggle safe under concurrent scans; a lost race re-reads the day once.
func (service *AttendanceService) CheckIn(ctx context.Context, user models.User, organizationID uint) (CheckInResult, error) {
	organization, err := loadOrganization(ctx, service.organizations, organizationID)
	if err != nil {
		return CheckInResult{}, err
	}

	now := service.now().UTC()
	workDate := WorkDate(now, service.location)

	for attempt := 0; attempt < 2; attempt++ {
		entry, found, err := service.workTimes.FindForDay(ctx, user.ID, organization.ID, workDate)
		if err != nil {
			return CheckInResult{}, fmt.Errorf("load work time: %w", err)
		}

		if !found {
			userID := user.ID
			organizationID := organization.ID
			entry = models.WorkTime{
				UserID:         &userID,
				OrganizationID: &organizationID,
				WorkDate:       workDate,
				StartTime:      now,
				CreatedAt:      now,
			}
			if err := service.workTimes.Create(ctx, &entry); err != nil {
				if isDuplicate(err) {
					continue
				}
				return CheckInResult{}, fmt.Errorf("create work time: %w", err)
			}
			return CheckInResult{Action: CheckInEntered, Entry: entry}, nil
		}

		if !entry.IsOpen() {
			return CheckInResult{}, ErrAlreadyCheckedOut
		}

		closed, err := service.workTimes.Close(ctx, entry.ID, now)
		if err != nil {
			return CheckInResult{}, fmt.Errorf("close work time: %w", err)
		}
		if !closed {
			continue
		}
		entry.EndTime = &now
		return CheckInResult{Action: CheckInExited, Entry: entry}, nil
	}

	return CheckInResult{}, ErrCheckInContention
}

// MonthlyTotal sums the closed records of one user at one organization whose
// work date falls in the requested month. Open records are counted, not summed.
// Callers other than the organization, staff or the user themselves are refused.
func (service *AttendanceService) MonthlyTotal(ctx context.Context, caller *models.User, organizationID uint, input MonthlyTotalInput) (MonthlyTotal, error) {
	organization, err := loadOrganization(ctx, service.organizations, organizationID)
	if err != nil {
		return MonthlyTotal{}, err
	}

	if strings.TrimSpace(input.UserEmail) == "" {
		return MonthlyTotal{}, ErrUserEmailRequired
	}
	year, month, err := parsePeriod(input.Year, input.Month)
	if err != nil {
		return MonthlyTotal{}, err
	}
	email := NormalizeAuthEmail(input.UserEmail)
	if email == "" {
		return MonthlyTotal{}, ErrInvalidEmail
	}

	isSelf := caller != nil && NormalizeAuthEmail(caller.Email) == email
	if !isSelf && !IsOrganizationOwner(caller, organization) && (caller == nil || !caller.IsStaffOrAdmin()) {
		return MonthlyTotal{}, ErrForbidden
	}

	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return MonthlyTotal{}, ErrUserNotFound
		}
		return MonthlyTotal{}, fmt.Errorf("load user: %w", err)
	}

	fromDate, toDate := MonthRange(year, month)
	entries, err := service.workTimes.List(ctx, models.WorkTimeFilter{
		OrganizationID: organization.ID,
		UserID:         user.ID,
		FromDate:       fromDate,
		ToDate:         toDate,
	})
	if err != nil {
		return MonthlyTotal{}, fmt.Errorf("list work times: %w", err)
	}

	total := MonthlyTotal{
		User:         user,
		Organization: organization,
		Year:         year,
		Month:        month,
		Records:      len(entries),
	}
	for _, entry := range entries {
		duration, closed := entry.Duration()
		if !closed {
			total.OpenRecords++
			continue
		}
		total.Duration += duration
	}
	return total, nil
}

func (service *AttendanceService) ListWorkTime(ctx context.Context, query WorkTimeQuery) ([]models.WorkTime, error) {
	workDate, err := ParseWorkDate(query.Date)
	if err != nil {
		return nil, err
	}
	entries, err := service.workTimes.List(ctx, models.WorkTimeFilter{
		OrganizationID:   query.OrganizationID,
		OrganizationName: strings.TrimSpace(query.OrganizationName),
		WorkDate:         workDate,
	})
	if err != nil {
		return nil, fmt.Errorf("list work times: %w", err)
	}
	return entries, nil
}

// ListOrganizationWorkTime lists one organization's records for its own account.
func (service *AttendanceService) ListOrganizationWorkTime(ctx context.Context, caller *models.User, organizationID uint, date string) ([]models.WorkTime, error) {
	organization, err := loadOwnedOrganization(ctx, service.organizations, caller, organizationID)
	if err != nil {
		return nil, err
	}
	return service.ListWorkTime(ctx, WorkTimeQuery{OrganizationID: organization.ID, Date: date})
}
