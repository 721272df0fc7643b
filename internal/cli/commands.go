package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/worktime/internal/db"
	"github.com/terraincognita07/worktime/internal/models"
	"github.com/terraincognita07/worktime/internal/security"
	"github.com/terraincognita07/worktime/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// Runner executes the management commands against an open database.
type Runner struct {
	auth      *services.AuthService
	directory *services.DirectoryService
	out       io.Writer
}

func NewRunner(database *gorm.DB, out io.Writer) (*Runner, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if out == nil {
		out = io.Discard
	}
	repositories := db.NewRepositories(database)
	return &Runner{
		auth:      services.NewAuthService(repositories.Users, repositories.Organizations),
		directory: services.NewDirectoryService(repositories.Users, repositories.Organizations),
		out:       out,
	}, nil
}

// WithHashCost forwards a bcrypt cost to the account service.
func (runner *Runner) WithHashCost(cost int) *Runner {
	runner.auth.WithHashCost(cost)
	return runner
}

func (runner *Runner) CreateUser(ctx context.Context, input services.AccountInput) (models.User, error) {
	user, err := runner.auth.CreateUser(ctx, input)
	if err != nil {
		return models.User{}, commandError("create user", err)
	}
	fmt.Fprintf(runner.out, "User %s created (id %d)\n", user.Email, user.ID)
	return user, nil
}

func (runner *Runner) CreateStaffUser(ctx context.Context, input services.AccountInput) (models.User, error) {
	user, err := runner.auth.CreateStaffUser(ctx, input)
	if err != nil {
		return models.User{}, commandError("create staff user", err)
	}
	fmt.Fprintf(runner.out, "Staff user %s created (id %d)\n", user.Email, user.ID)
	return user, nil
}

func (runner *Runner) CreateSuperUser(ctx context.Context, input services.AccountInput) (models.User, error) {
	user, err := runner.auth.CreateSuperUser(ctx, input)
	if err != nil {
		return models.User{}, commandError("create superuser", err)
	}
	fmt.Fprintf(runner.out, "Superuser %s created (id %d)\n", user.Email, user.ID)
	return user, nil
}

func (runner *Runner) CreateOrganization(ctx context.Context, name string, email string) (models.Organization, error) {
	organization, err := runner.directory.CreateOrganization(ctx, name, email)
	if err != nil {
		return models.Organization{}, commandError("create organization", err)
	}
	fmt.Fprintf(runner.out, "Organization %q created (id %d)\n", organization.Name, organization.ID)
	return organization, nil
}

func (runner *Runner) AddMember(ctx context.Context, email string, organizationID uint) error {
	if err := runner.auth.AddMember(ctx, email, organizationID); err != nil {
		return commandError("add member", err)
	}
	fmt.Fprintf(runner.out, "%s added to organization %d\n", services.NormalizeAuthEmail(email), organizationID)
	return nil
}

// ResetPassword replaces the account password with a generated one and
// prints it once.
func (runner *Runner) ResetPassword(ctx context.Context, email string) (string, error) {
	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}
	if err := runner.auth.SetPassword(ctx, email, temporaryPassword); err != nil {
		return "", commandError("reset password", err)
	}

	fmt.Fprintln(runner.out, "Password reset successful")
	fmt.Fprintf(runner.out, "Temporary password: %s\n", temporaryPassword)
	return temporaryPassword, nil
}

// commandError keeps the service message readable on the terminal while
// preserving the cause for errors.Is.
func commandError(action string, err error) error {
	return fmt.Errorf("%s: %s: %w", action, services.MessageOf(err), err)
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	return security.RandomString(length, temporaryPasswordAlphabet)
}
