// Package catalog holds the commands that manage the plan catalog.
package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/gymflow/gymflow/internal/application/membership/usecases"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/infrastructure/database"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/seeds"
	"github.com/gymflow/gymflow/internal/infrastructure/repository"
	"github.com/gymflow/gymflow/internal/interfaces/cli/bootstrap"
	"github.com/gymflow/gymflow/internal/shared/db"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

var (
	opts   bootstrap.Options
	file   string
	planID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the plan catalog",
		Long:  `Seed plans from a YAML file, retire plans from sale, or delete plans nobody ever held.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newSeedCommand(),
		newRetireCommand(),
		newDeleteCommand(),
	)

	return cmd
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create plans listed in a catalog file",
		Long:  `Create every plan in the file that does not exist yet. Existing plans are matched by name and never repriced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(gdb *gorm.DB, currency string, log logger.Interface) error {
				return Seed(cmd.Context(), gdb, file, currency, cmd.OutOrStdout(), log)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "./configs/plans.yaml", "Path to the plan catalog")

	return cmd
}

func newRetireCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Take a plan off sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(gdb *gorm.DB, _ string, log logger.Interface) error {
				return Retire(cmd.Context(), gdb, planID, cmd.OutOrStdout(), log)
			})
		},
	}

	cmd.Flags().UintVar(&planID, "id", 0, "Plan id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a plan no membership ever referenced",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(gdb *gorm.DB, _ string, log logger.Interface) error {
				return Delete(cmd.Context(), gdb, planID, cmd.OutOrStdout(), log)
			})
		},
	}

	cmd.Flags().UintVar(&planID, "id", 0, "Plan id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func withDatabase(fn func(gdb *gorm.DB, defaultCurrency string, log logger.Interface) error) error {
	cfg, log, err := bootstrap.InitWithDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(database.Get(), cfg.Membership.DefaultCurrency, log.Named("catalog"))
}

// Seed loads path and creates the plans it lists.
func Seed(ctx context.Context, gdb *gorm.DB, path, defaultCurrency string, out io.Writer, log logger.Interface) error {
	catalog, err := seeds.LoadCatalogFile(path)
	if err != nil {
		return err
	}

	plans := make([]*membership.Plan, 0, len(catalog.Plans))
	for _, seed := range catalog.Plans {
		plan, err := seed.ToPlan(defaultCurrency)
		if err != nil {
			return err
		}
		plans = append(plans, plan)
	}

	uc := usecases.NewSeedCatalogUseCase(repository.NewPlanRepository(gdb, log), db.NewTransactionManager(gdb), log)
	result, err := uc.Execute(ctx, usecases.SeedCatalogCommand{Plans: plans})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "created: %s\n", joinOrNone(result.Created))
	fmt.Fprintf(out, "retired: %s\n", joinOrNone(result.Retired))
	fmt.Fprintf(out, "skipped: %s\n", joinOrNone(result.Skipped))
	return nil
}

func Retire(ctx context.Context, gdb *gorm.DB, id uint, out io.Writer, log logger.Interface) error {
	plan, err := usecases.NewRetirePlanUseCase(repository.NewPlanRepository(gdb, log), log).Execute(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "plan %d (%s) retired\n", plan.ID, plan.Name)
	return nil
}

func Delete(ctx context.Context, gdb *gorm.DB, id uint, out io.Writer, log logger.Interface) error {
	if err := usecases.NewDeletePlanUseCase(repository.NewPlanRepository(gdb, log), log).Execute(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "plan %d deleted\n", id)
	return nil
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
