package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gymflow/gymflow/internal/interfaces/cli/catalog"
	"github.com/gymflow/gymflow/internal/interfaces/cli/member"
	"github.com/gymflow/gymflow/internal/interfaces/cli/migrate"
	"github.com/gymflow/gymflow/internal/interfaces/cli/server"
	"github.com/gymflow/gymflow/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gymflow",
		Short:         "Gymflow - gym membership lifecycle service",
		Long:          `Gymflow runs the membership API and ships the migration, catalog and member administration commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		catalog.NewCommand(),
		member.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
