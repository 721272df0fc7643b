package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/terraincognita07/worktime/internal/api"
	"github.com/terraincognita07/worktime/internal/config"
	"github.com/terraincognita07/worktime/internal/db"
	"github.com/terraincognita07/worktime/internal/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var version = "dev"

// Globals are the flags shared by every subcommand.
type Globals struct {
	Logging  config.Logging  `embed:"" prefix:"log-"`
	Database config.Database `embed:"" prefix:"db-"`
}

type rootCommand struct {
	Globals `embed:""`

	Version kong.VersionFlag `help:"Print the version and exit."`

	Serve              ServeCmd              `cmd:"" help:"Run the HTTP server."`
	CreateUser         CreateUserCmd         `cmd:"" name:"create-user" help:"Create an employee account."`
	CreateStaffUser    CreateStaffUserCmd    `cmd:"" name:"create-staffuser" help:"Create a staff account."`
	CreateSuperUser    CreateSuperUserCmd    `cmd:"" name:"create-superuser" help:"Create an administrator account."`
	CreateOrganization CreateOrganizationCmd `cmd:"" name:"create-organization" help:"Create an organization."`
	AddMember          AddMemberCmd          `cmd:"" name:"add-member" help:"Attach a user to an organization."`
	ResetPassword      ResetPasswordCmd      `cmd:"" name:"reset-password" help:"Replace a password with a temporary one."`
}

func main() {
	if err := config.LoadDotEnv(dotEnvPath()); err != nil {
		fmt.Fprintf(os.Stderr, "worktime: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	root := rootCommand{}
	cmd := kong.Parse(&root,
		kong.Name("worktime"),
		kong.Description("Attendance and worktime tracking service."),
		kong.Vars{"version": version},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := cmd.Run(&root.Globals)
	cmd.FatalIfErrorf(err)
}

// dotEnvPath lets deployments point at a different file without a flag,
// since the file has to be read before flags are parsed.
func dotEnvPath() string {
	if path := strings.TrimSpace(os.Getenv("WORKTIME_ENV_FILE")); path != "" {
		return path
	}
	return ".env"
}

func (globals *Globals) newLogger() (*zap.Logger, error) {
	logger, err := logging.New(globals.Logging.Level, globals.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}
	return logger.With(zap.String("service", "worktime")), nil
}

func (globals *Globals) openDatabase(logger *zap.Logger) (*gorm.DB, func(), error) {
	database, err := db.Open(globals.Database.Driver, globals.Database.DSN(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}
	return database, func() {
		_ = sqlDB.Close()
	}, nil
}

func newApp(handler *api.Handler, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "worktime",
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.RequestLogger(logger))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

// jsonErrorHandler answers errors that escape the handlers, panics included,
// with the same body shape the handlers use.
func jsonErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "internal error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		}
		if status >= fiber.StatusInternalServerError {
			logger.Error("unhandled request error", zap.String("path", c.Path()), zap.Error(err))
			message = "internal error"
		}
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}
