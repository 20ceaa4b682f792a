package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/diwise/postharvest/internal/pkg/application/repositories"
	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the database schema",
		Long: `Create the tables and indexes of the reference database in the database
configured by the POSTGRES_* environment variables. Existing tables are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Bootstrap(ctx, db); err != nil {
				return err
			}

			logging.GetFromContext(ctx).Info("schema created")
			return nil
		},
	}
}

const (
	usernameFlag  = "username"
	passwordFlag  = "password"
	firstNameFlag = "first-name"
	lastNameFlag  = "last-name"
	emailFlag     = "email"
	jobTitleFlag  = "job-title"
)

var userFlags = map[string]cobraflags.Flag{
	usernameFlag:  &cobraflags.StringFlag{Name: usernameFlag, Usage: "Username of the new user (required)"},
	passwordFlag:  &cobraflags.StringFlag{Name: passwordFlag, Usage: "Password of the new user (required)"},
	firstNameFlag: &cobraflags.StringFlag{Name: firstNameFlag, Usage: "First name (required)"},
	lastNameFlag:  &cobraflags.StringFlag{Name: lastNameFlag, Usage: "Last name (required)"},
	emailFlag:     &cobraflags.StringFlag{Name: emailFlag, Usage: "Email address (required)"},
	jobTitleFlag:  &cobraflags.StringFlag{Name: jobTitleFlag, Usage: "Job title"},
}

func newUsersCommand() *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	var admin bool

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a user directly to the database",
		Long: `Add a user directly to the database. This is how the first administrator
is created since registration through the api never grants admin rights.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			u := types.NewUser{
				User: types.User{
					Username:  userFlags[usernameFlag].GetString(),
					FirstName: userFlags[firstNameFlag].GetString(),
					LastName:  userFlags[lastNameFlag].GetString(),
					Email:     userFlags[emailFlag].GetString(),
					JobTitle:  userFlags[jobTitleFlag].GetString(),
					IsAdmin:   admin,
				},
				Password: userFlags[passwordFlag].GetString(),
			}

			db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			user, err := repositories.NewUsers(db, workFactor(ctx)).Register(ctx, u)
			if err != nil {
				return err
			}

			logging.GetFromContext(ctx).Info("user added", "username", user.Username, "isAdmin", user.IsAdmin)
			return nil
		},
	}

	cobraflags.RegisterMap(add, userFlags)
	add.Flags().BoolVar(&admin, "admin", false, "Grant admin rights")

	users.AddCommand(add)

	return users
}

func connect(ctx context.Context) (database.Database, error) {
	cfg, err := database.LoadConfiguration()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func workFactor(ctx context.Context) int {
	value := env.GetVariableOrDefault(ctx, "BCRYPT_WORK_FACTOR", "12")

	wf, err := strconv.Atoi(value)
	if err != nil {
		logging.GetFromContext(ctx).Warn("ignoring invalid bcrypt work factor", "value", value)
		return bcrypt.DefaultCost
	}

	return wf
}
