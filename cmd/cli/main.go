package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saltsync/rosterd/cmd/cli/commands"
	"github.com/saltsync/rosterd/internal/config"
	"github.com/saltsync/rosterd/pkg/postgres"
	"github.com/saltsync/rosterd/pkg/utils/logging"
)

var (
	env      string
	database *postgres.DB

	// app is populated by initApp before any subcommand runs.
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "rosterd CLI - Manage the support duty roster",
		Long:  `A CLI tool for generating weekly duty rosters, advancing the shift rotation and validating shift moves.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if database != nil {
				database.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.GenerateRosterCmd(app))
	rootCmd.AddCommand(commands.AdvanceRotationCmd(app))
	rootCmd.AddCommand(commands.ApplyMoveCmd(app))
	rootCmd.AddCommand(commands.ValidateMoveCmd(app))
	rootCmd.AddCommand(commands.ShowRosterCmd(app))
	rootCmd.AddCommand(commands.ListEmployeesCmd(app))
	rootCmd.AddCommand(commands.AddEmployeeCmd(app))
	rootCmd.AddCommand(commands.AddLeaveCmd(app))
	rootCmd.AddCommand(commands.AddHolidayCmd(app))
	rootCmd.AddCommand(commands.AuditLogCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and database
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Local overrides (database URL etc.) come from a .env file when
	// present.
	if err := godotenv.Load(); err == nil {
		app.Logger.Debug("Loaded .env file")
	}

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Connect to the database
	databaseURL := os.Getenv("ROSTERD_DATABASE_URL")
	if databaseURL == "" {
		databaseURL = app.Cfg.DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("no database URL configured (set ROSTERD_DATABASE_URL or databaseURL in config)")
	}

	app.Logger.Info("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database
	app.Logger.Debug("Database ready")

	return nil
}
