package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/terraincognita07/worktime/internal/models"
	"gorm.io/gorm"
)

type stubOrganizationRepo struct {
	organizations map[uint]models.Organization
	nextID        uint
	createErr     error
}

func newStubOrganizationRepo(organizations ...models.Organization) *stubOrganizationRepo {
	repo := &stubOrganizationRepo{organizations: map[uint]models.Organization{}, nextID: 1}
	for _, organization := range organizations {
		repo.organizations[organization.ID] = organization
		if organization.ID >= repo.nextID {
			repo.nextID = organization.ID + 1
		}
	}
	return repo
}

func (stub *stubOrganizationRepo) FindByID(_ context.Context, organizationID uint) (models.Organization, error) {
	organization, ok := stub.organizations[organizationID]
	if !ok {
		return models.Organization{}, gorm.ErrRecordNotFound
	}
	return organization, nil
}

func (stub *stubOrganizationRepo) List(context.Context) ([]models.Organization, error) {
	organizations := make([]models.Organization, 0, len(stub.organizations))
	for _, organization := range stub.organizations {
		organizations = append(organizations, organization)
	}
	sort.Slice(organizations, func(i, j int) bool { return organizations[i].ID < organizations[j].ID })
	return organizations, nil
}

func (stub *stubOrganizationRepo) Create(_ context.Context, organization *models.Organization) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	organization.ID = stub.nextID
	stub.nextID++
	stub.organizations[organization.ID] = *organization
	return nil
}

type stubUserRepo struct {
	users       []models.User
	createErr   error
	memberships map[uint][]uint
	lastFilter  models.UserFilter
}

func (stub *stubUserRepo) ExistsByNormalizedEmail(_ context.Context, email string) (bool, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubUserRepo) FindByNormalizedEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubUserRepo) FindByID(_ context.Context, userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubUserRepo) Create(_ context.Context, user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	user.ID = uint(len(stub.users) + 1)
	stub.users = append(stub.users, *user)
	return nil
}

func (stub *stubUserRepo) UpdatePassword(_ context.Context, userID uint, passwordHash string) error {
	for index := range stub.users {
		if stub.users[index].ID == userID {
			stub.users[index].PasswordHash = passwordHash
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (stub *stubUserRepo) AddOrganization(_ context.Context, userID uint, organizationID uint) error {
	if stub.memberships == nil {
		stub.memberships = map[uint][]uint{}
	}
	stub.memberships[userID] = append(stub.memberships[userID], organizationID)
	return nil
}

func (stub *stubUserRepo) List(_ context.Context, filter models.UserFilter) ([]models.User, error) {
	stub.lastFilter = filter
	return stub.users, nil
}

// stubWorkTimeRepo mimics the unique day key and the conditional close.
type stubWorkTimeRepo struct {
	entries    []models.WorkTime
	lastFilter models.WorkTimeFilter
	// beforeCreate runs before the uniqueness check to simulate a racing request.
	beforeCreate func(stub *stubWorkTimeRepo)
	// beforeClose runs before the conditional update to simulate a racing request.
	beforeClose func(stub *stubWorkTimeRepo)
	listErr     error
}

func (stub *stubWorkTimeRepo) FindForDay(_ context.Context, userID uint, organizationID uint, workDate string) (models.WorkTime, bool, error) {
	for _, entry := range stub.entries {
		if *entry.UserID == userID && *entry.OrganizationID == organizationID && entry.WorkDate == workDate {
			return entry, true, nil
		}
	}
	return models.WorkTime{}, false, nil
}

func (stub *stubWorkTimeRepo) Create(_ context.Context, entry *models.WorkTime) error {
	if stub.beforeCreate != nil {
		hook := stub.beforeCreate
		stub.beforeCreate = nil
		hook(stub)
	}
	for _, existing := range stub.entries {
		if *existing.UserID == *entry.UserID && *existing.OrganizationID == *entry.OrganizationID && existing.WorkDate == entry.WorkDate {
			return gorm.ErrDuplicatedKey
		}
	}
	entry.ID = uint(len(stub.entries) + 1)
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *stubWorkTimeRepo) Close(_ context.Context, entryID uint, endTime time.Time) (bool, error) {
	if stub.beforeClose != nil {
		hook := stub.beforeClose
		stub.beforeClose = nil
		hook(stub)
	}
	for index := range stub.entries {
		if stub.entries[index].ID == entryID && stub.entries[index].EndTime == nil {
			end := endTime
			stub.entries[index].EndTime = &end
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubWorkTimeRepo) List(_ context.Context, filter models.WorkTimeFilter) ([]models.WorkTime, error) {
	stub.lastFilter = filter
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	matched := make([]models.WorkTime, 0)
	for _, entry := range stub.entries {
		if filter.OrganizationID != 0 && (entry.OrganizationID == nil || *entry.OrganizationID != filter.OrganizationID) {
			continue
		}
		if filter.UserID != 0 && (entry.UserID == nil || *entry.UserID != filter.UserID) {
			continue
		}
		if filter.WorkDate != "" && entry.WorkDate != filter.WorkDate {
			continue
		}
		if filter.FromDate != "" && entry.WorkDate < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && entry.WorkDate >= filter.ToDate {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

func closedEntry(id uint, userID uint, organizationID uint, start time.Time, length time.Duration) models.WorkTime {
	end := start.Add(length)
	return models.WorkTime{
		ID:             id,
		UserID:         &userID,
		OrganizationID: &organizationID,
		WorkDate:       start.Format(models.WorkDateLayout),
		StartTime:      start,
		EndTime:        &end,
		CreatedAt:      start,
	}
}

var errStubFailure = errors.New("stub failure")
