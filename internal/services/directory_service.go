package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/terraincognita07/worktime/internal/models"
)

type DirectoryUserRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

type DirectoryOrganizationRepository interface {
	OrganizationLookup
	List(ctx context.Context) ([]models.Organization, error)
	Create(ctx context.Context, organization *models.Organization) error
}

// UserQuery filters user listings. Search is split on whitespace and every
// term must match the email, first name or last name.
type UserQuery struct {
	OrganizationName string
	OrganizationID   uint
	Date             string
	Search           string
}

type DirectoryService struct {
	users         DirectoryUserRepository
	organizations DirectoryOrganizationRepository
}

func NewDirectoryService(users DirectoryUserRepository, organizations DirectoryOrganizationRepository) *DirectoryService {
	return &DirectoryService{
		users:         users,
		organizations: organizations,
	}
}

func (service *DirectoryService) ListUsers(ctx context.Context, query UserQuery) ([]models.User, error) {
	workDate, err := ParseWorkDate(query.Date)
	if err != nil {
		return nil, err
	}
	users, err := service.users.List(ctx, models.UserFilter{
		OrganizationID:   query.OrganizationID,
		OrganizationName: strings.TrimSpace(query.OrganizationName),
		WorkDate:         workDate,
		SearchTerms:      strings.Fields(query.Search),
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListEmployees lists members of the caller's own organization.
func (service *DirectoryService) ListEmployees(ctx context.Context, caller *models.User, organizationID uint, date string, search string) ([]models.User, error) {
	organization, err := loadOwnedOrganization(ctx, service.organizations, caller, organizationID)
	if err != nil {
		return nil, err
	}
	return service.ListUsers(ctx, UserQuery{
		OrganizationID: organization.ID,
		Date:           date,
		Search:         search,
	})
}

func (service *DirectoryService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	organizations, err := service.organizations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return organizations, nil
}

func (service *DirectoryService) CreateOrganization(ctx context.Context, name string, emailRaw string) (models.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Organization{}, ErrInvalidOrgName
	}
	if strings.TrimSpace(emailRaw) == "" {
		return models.Organization{}, ErrEmailRequired
	}
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.Organization{}, ErrInvalidEmail
	}

	organization := models.Organization{Name: name, Email: email}
	if err := service.organizations.Create(ctx, &organization); err != nil {
		return models.Organization{}, fmt.Errorf("create organization: %w", err)
	}
	return organization, nil
}
