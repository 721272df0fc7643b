package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/worktime/internal/models"
)

const (
	shiftTimeLayout    = "15:04"
	maxShiftNameLength = 120
)

type ShiftRepository interface {
	ListByOrganization(ctx context.Context, organizationID uint) ([]models.OrganizationWorkTime, error)
	Create(ctx context.Context, shift *models.OrganizationWorkTime) error
}

type ShiftInput struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ShiftService struct {
	shifts        ShiftRepository
	organizations OrganizationLookup
}

func NewShiftService(shifts ShiftRepository, organizations OrganizationLookup) *ShiftService {
	return &ShiftService{
		shifts:        shifts,
		organizations: organizations,
	}
}

func (service *ShiftService) List(ctx context.Context, caller *models.User, organizationID uint) ([]models.OrganizationWorkTime, error) {
	organization, err := loadOwnedOrganization(ctx, service.organizations, caller, organizationID)
	if err != nil {
		return nil, err
	}
	shifts, err := service.shifts.ListByOrganization(ctx, organization.ID)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	return shifts, nil
}

// Create stores a shift template. End may precede start for overnight shifts.
func (service *ShiftService) Create(ctx context.Context, caller *models.User, organizationID uint, input ShiftInput) (models.OrganizationWorkTime, error) {
	organization, err := loadOwnedOrganization(ctx, service.organizations, caller, organizationID)
	if err != nil {
		return models.OrganizationWorkTime{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || len([]rune(name)) > maxShiftNameLength {
		return models.OrganizationWorkTime{}, ErrInvalidShiftName
	}
	startTime, err := normalizeShiftTime(input.StartTime)
	if err != nil {
		return models.OrganizationWorkTime{}, err
	}
	endTime, err := normalizeShiftTime(input.EndTime)
	if err != nil {
		return models.OrganizationWorkTime{}, err
	}

	shift := models.OrganizationWorkTime{
		OrganizationID: organization.ID,
		Name:           name,
		StartTime:      startTime,
		EndTime:        endTime,
	}
	if err := service.shifts.Create(ctx, &shift); err != nil {
		return models.OrganizationWorkTime{}, fmt.Errorf("create shift: %w", err)
	}
	return shift, nil
}

func normalizeShiftTime(raw string) (string, error) {
	parsed, err := time.Parse(shiftTimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidShiftTime
	}
	return parsed.Format(shiftTimeLayout), nil
}
