package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/terraincognita07/worktime/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(ctx context.Context, email string) (bool, error)
	FindByNormalizedEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID uint) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	AddOrganization(ctx context.Context, userID uint, organizationID uint) error
}

type OrganizationLookup interface {
	FindByID(ctx context.Context, organizationID uint) (models.Organization, error)
}

// AccountInput carries the fields of a new account. Admin is only consulted
// by CreateSuperUser.
type AccountInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Inactive  bool
	Admin     *bool
}

type AuthService struct {
	users         AuthUserRepository
	organizations OrganizationLookup
	hashCost      int
}

func NewAuthService(users AuthUserRepository, organizations OrganizationLookup) *AuthService {
	return &AuthService{
		users:         users,
		organizations: organizations,
		hashCost:      bcrypt.DefaultCost,
	}
}

// WithHashCost lowers the bcrypt cost, mainly for tests.
func (service *AuthService) WithHashCost(cost int) *AuthService {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		service.hashCost = cost
	}
	return service
}

func (service *AuthService) CreateUser(ctx context.Context, input AccountInput) (models.User, error) {
	return service.createAccount(ctx, input, false, false)
}

func (service *AuthService) CreateStaffUser(ctx context.Context, input AccountInput) (models.User, error) {
	return service.createAccount(ctx, input, true, false)
}

func (service *AuthService) CreateSuperUser(ctx context.Context, input AccountInput) (models.User, error) {
	if input.Admin != nil && !*input.Admin {
		return models.User{}, ErrSuperUserMustBeAdmin
	}
	return service.createAccount(ctx, input, true, true)
}

func (service *AuthService) createAccount(ctx context.Context, input AccountInput, staff bool, admin bool) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), service.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(passwordHash),
		Active:       !input.Inactive,
		Staff:        staff,
		Admin:        admin,
	}
	if err := service.users.Create(ctx, &user); err != nil {
		if isDuplicate(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate answers ErrInvalidCredentials for unknown accounts, wrong
// passwords and inactive accounts alike.
func (service *AuthService) Authenticate(ctx context.Context, emailRaw string, password string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.Active {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// FindActiveUser resolves a session subject.
func (service *AuthService) FindActiveUser(ctx context.Context, userID uint) (models.User, error) {
	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !user.Active {
		return models.User{}, ErrInactiveAccount
	}
	return user, nil
}

func (service *AuthService) FindByEmail(ctx context.Context, emailRaw string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrInvalidEmail
	}
	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func (service *AuthService) SetPassword(ctx context.Context, emailRaw string, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	user, err := service.FindByEmail(ctx, emailRaw)
	if err != nil {
		return err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), service.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.UpdatePassword(ctx, user.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (service *AuthService) AddMember(ctx context.Context, emailRaw string, organizationID uint) error {
	user, err := service.FindByEmail(ctx, emailRaw)
	if err != nil {
		return err
	}
	if _, err := loadOrganization(ctx, service.organizations, organizationID); err != nil {
		return err
	}
	if err := service.users.AddOrganization(ctx, user.ID, organizationID); err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}
