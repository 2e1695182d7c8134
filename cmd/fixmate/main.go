package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixmate/internal/interfaces/cli/fixture"
	"fixmate/internal/interfaces/cli/migrate"
	"fixmate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixmate",
		Short: "FixMate - appliance repair catalog service",
		Long:  `FixMate serves a brand/appliance/issue repair catalog with full-text search, plus the offline tools that generate and load its fixture data.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		fixture.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
