package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"fixmate/internal/infrastructure/config"
	"fixmate/internal/infrastructure/database"
	"fixmate/internal/infrastructure/fixture"
	"fixmate/internal/infrastructure/migration"
	"fixmate/internal/infrastructure/repository"
	"fixmate/internal/shared/logger"
)

var (
	env         string
	fixturePath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration and data loading tools",
		Long:  `Apply schema migrations, check migration status, and load the catalog fixture into the database.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
		newLoadCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current schema version",
		RunE:  runStatus,
	}
}

func newLoadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the catalog fixture",
		Long:  `Replace the whole catalog with the contents of the brands.json fixture and rebuild the full-text index.`,
		RunE:  runLoad,
	}

	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "Path to fixture file (default: fixture.path from config)")

	return cmd
}

// setup loads config, initializes the logger and opens the database.
func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	return migration.NewRunner(database.Get()).Up()
}

func runStatus(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	version, err := migration.NewRunner(database.Get()).Status()
	if err != nil {
		return err
	}

	fmt.Printf("schema version: %d\n", version)
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	// Loading assumes the schema exists; apply migrations first so a fresh
	// database works in one step.
	if err := migration.NewRunner(database.Get()).Up(); err != nil {
		return err
	}

	path := fixturePath
	if path == "" {
		path = cfg.Fixture.Path
	}

	repo := repository.NewCatalogRepository(database.Get(), logger.NewLogger())
	loader := fixture.NewLoader(repo)

	count, err := loader.Load(cmd.Context(), path)
	if err != nil {
		return err
	}

	fmt.Printf("loaded %d issues from %s\n", count, path)
	return nil
}
