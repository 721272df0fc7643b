package main

import (
	"context"
	"os"

	"github.com/terraincognita07/worktime/internal/cli"
	"github.com/terraincognita07/worktime/internal/services"
)

// AccountFlags are shared by the account creation commands.
type AccountFlags struct {
	Email     string `arg:"" help:"Account email."`
	Password  string `help:"Account password. Prompted for when empty." env:"WORKTIME_PASSWORD"`
	FirstName string `help:"First name."`
	LastName  string `help:"Last name."`
	Inactive  bool   `help:"Create the account disabled."`
}

func (flags AccountFlags) input() (services.AccountInput, error) {
	password := flags.Password
	if password == "" {
		prompted, err := cli.PromptNewPassword(os.Stdin, os.Stderr)
		if err != nil {
			return services.AccountInput{}, err
		}
		password = prompted
	}
	return services.AccountInput{
		Email:     flags.Email,
		Password:  password,
		FirstName: flags.FirstName,
		LastName:  flags.LastName,
		Inactive:  flags.Inactive,
	}, nil
}

type CreateUserCmd struct {
	AccountFlags `embed:""`
}

func (cmd *CreateUserCmd) Run(ctx context.Context, globals *Globals) error {
	input, err := cmd.input()
	if err != nil {
		return err
	}
	return withRunner(globals, func(runner *cli.Runner) error {
		_, err := runner.CreateUser(ctx, input)
		return err
	})
}

type CreateStaffUserCmd struct {
	AccountFlags `embed:""`
}

func (cmd *CreateStaffUserCmd) Run(ctx context.Context, globals *Globals) error {
	input, err := cmd.input()
	if err != nil {
		return err
	}
	return withRunner(globals, func(runner *cli.Runner) error {
		_, err := runner.CreateStaffUser(ctx, input)
		return err
	})
}

type CreateSuperUserCmd struct {
	AccountFlags `embed:""`
	Admin        bool `help:"Grant administrator rights. Must stay enabled." default:"true" negatable:""`
}

func (cmd *CreateSuperUserCmd) Run(ctx context.Context, globals *Globals) error {
	input, err := cmd.input()
	if err != nil {
		return err
	}
	admin := cmd.Admin
	input.Admin = &admin
	return withRunner(globals, func(runner *cli.Runner) error {
		_, err := runner.CreateSuperUser(ctx, input)
		return err
	})
}

type CreateOrganizationCmd struct {
	Name  string `arg:"" help:"Organization name."`
	Email string `arg:"" help:"Organization account email."`
}

func (cmd *CreateOrganizationCmd) Run(ctx context.Context, globals *Globals) error {
	return withRunner(globals, func(runner *cli.Runner) error {
		_, err := runner.CreateOrganization(ctx, cmd.Name, cmd.Email)
		return err
	})
}

type AddMemberCmd struct {
	Email          string `arg:"" help:"User email."`
	OrganizationID uint   `arg:"" name:"organization-id" help:"Organization id."`
}

func (cmd *AddMemberCmd) Run(ctx context.Context, globals *Globals) error {
	return withRunner(globals, func(runner *cli.Runner) error {
		return runner.AddMember(ctx, cmd.Email, cmd.OrganizationID)
	})
}

type ResetPasswordCmd struct {
	Email string `arg:"" help:"User email."`
}

func (cmd *ResetPasswordCmd) Run(ctx context.Context, globals *Globals) error {
	return withRunner(globals, func(runner *cli.Runner) error {
		_, err := runner.ResetPassword(ctx, cmd.Email)
		return err
	})
}

func withRunner(globals *Globals, run func(runner *cli.Runner) error) error {
	logger, err := globals.newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	database, closeDatabase, err := globals.openDatabase(logger)
	if err != nil {
		return err
	}
	defer closeDatabase()

	runner, err := cli.NewRunner(database, os.Stdout)
	if err != nil {
		return err
	}
	return run(runner)
}
