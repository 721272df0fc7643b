package services

import (
	"context"
	"fmt"

	"github.com/terraincognita07/worktime/internal/models"
)

// IsOrganizationOwner reports whether the caller is the organization's own
// account, matched by email.
func IsOrganizationOwner(caller *models.User, organization models.Organization) bool {
	if caller == nil {
		return false
	}
	callerEmail := NormalizeAuthEmail(caller.Email)
	return callerEmail != "" && callerEmail == NormalizeAuthEmail(organization.Email)
}

func loadOrganization(ctx context.Context, organizations OrganizationLookup, organizationID uint) (models.Organization, error) {
	if organizationID == 0 {
		return models.Organization{}, ErrOrganizationNotFound
	}
	organization, err := organizations.FindByID(ctx, organizationID)
	if err != nil {
		if isNotFound(err) {
			return models.Organization{}, ErrOrganizationNotFound
		}
		return models.Organization{}, fmt.Errorf("load organization: %w", err)
	}
	return organization, nil
}

func loadOwnedOrganization(ctx context.Context, organizations OrganizationLookup, caller *models.User, organizationID uint) (models.Organization, error) {
	organization, err := loadOrganization(ctx, organizations, organizationID)
	if err != nil {
		return models.Organization{}, err
	}
	if !IsOrganizationOwner(caller, organization) {
		return models.Organization{}, ErrNotOrganizationOwner
	}
	return organization, nil
}
