package fixture

import (
	"context"
	"fmt"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/shared/logger"
)

// Loader populates the catalog from a fixture file. Each run is a full
// replace of the previous catalog, never an incremental upsert.
type Loader struct {
	repo   catalog.Repository
	logger logger.Interface
}

// NewLoader creates a new fixture loader
func NewLoader(repo catalog.Repository) *Loader {
	return &Loader{
		repo:   repo,
		logger: logger.NewLogger().With("component", "fixture.loader"),
	}
}

// Load reads the fixture file and replaces the catalog with its contents.
// Returns the number of issue rows loaded.
func (l *Loader) Load(ctx context.Context, path string) (int, error) {
	f, err := ReadFile(path)
	if err != nil {
		return 0, err
	}

	issues := f.Flatten()
	count, err := l.repo.ReplaceAll(ctx, issues)
	if err != nil {
		return 0, fmt.Errorf("failed to load fixture: %w", err)
	}

	l.logger.Infow("fixture loaded", "path", path, "brands", len(f), "rows", count)
	return count, nil
}
