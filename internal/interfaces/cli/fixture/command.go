package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fixmate/internal/infrastructure/config"
	infraFixture "fixmate/internal/infrastructure/fixture"
	"fixmate/internal/shared/logger"
)

var (
	env       string
	outPath   string
	brands    int
	perBrand  int
	perDevice int
	seed      int64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Generate a synthetic catalog fixture",
		Long:  `Generate a brands.json fixture with seeded synthetic issue data for development and testing. Output is deterministic for a fixed seed.`,
		RunE:  run,
	}

	defaults := infraFixture.DefaultGeneratorOptions()

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default: fixture.path from config)")
	cmd.Flags().IntVar(&brands, "brands", defaults.BrandCount, "Number of brands")
	cmd.Flags().IntVar(&perBrand, "appliances", defaults.AppliancesPerBrand, "Appliances per brand")
	cmd.Flags().IntVar(&perDevice, "issues", defaults.IssuesPerAppliance, "Issues per appliance")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Random seed")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	path := outPath
	if path == "" {
		path = cfg.Fixture.Path
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	generator := infraFixture.NewGenerator(infraFixture.GeneratorOptions{
		BrandCount:         brands,
		AppliancesPerBrand: perBrand,
		IssuesPerAppliance: perDevice,
		Seed:               seed,
	})

	f := generator.Generate()
	if err := f.WriteFile(path); err != nil {
		return err
	}

	fmt.Printf("generated %d brands, %d issues -> %s\n", len(f), f.IssueCount(), path)
	return nil
}
