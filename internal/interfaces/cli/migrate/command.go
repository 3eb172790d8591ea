package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gymflow/gymflow/internal/infrastructure/config"
	"github.com/gymflow/gymflow/internal/infrastructure/database"
	"github.com/gymflow/gymflow/internal/infrastructure/migration"
	"github.com/gymflow/gymflow/internal/interfaces/cli/bootstrap"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

const scriptsDir = "./internal/infrastructure/migration/scripts"

var (
	opts  bootstrap.Options
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations. sqlite databases are brought up to date with gorm auto-migrate.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// gooseFor returns the goose strategy for cfg, or an error for drivers managed by auto-migrate.
func gooseFor(cfg *config.Config, log logger.Interface, op string) (*migration.GooseStrategy, error) {
	strategy, ok := migration.NewManager(cfg.Database.Driver, log).GetStrategy().(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("%s is only supported with goose strategy (driver %q)", op, cfg.Database.Driver)
	}
	return strategy, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", opts.ResolveEnv(), "driver", cfg.Database.Driver)

	if err := migration.NewManager(cfg.Database.Driver, log).Migrate(database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseFor(cfg, log, "down migration")
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", opts.ResolveEnv(), "steps", steps)

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseFor(cfg, log, "status check")
	if err != nil {
		return err
	}

	currentVersion, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", opts.ResolveEnv())
	fmt.Fprintf(out, "  Current Version: %d\n", currentVersion)

	if err := strategy.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(scriptsDir)
	if err != nil {
		return fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	if err := migration.NewGooseStrategy("mysql", log).Create(dir, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}
