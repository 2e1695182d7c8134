// Package migration runs the embedded schema migrations with goose.
// The FTS5 virtual table lives here because gorm's AutoMigrate cannot
// create virtual tables.
package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"fixmate/internal/shared/logger"
)

//go:embed scripts/*.sql
var scripts embed.FS

// Runner applies the embedded migrations to a database.
type Runner struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRunner(db *gorm.DB) *Runner {
	return &Runner{
		db:     db,
		logger: logger.NewLogger().With("component", "migration"),
	}
}

// Up applies all pending migrations.
func (r *Runner) Up() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scripts)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	r.logger.Infow("migrations applied", "version", version)
	return nil
}

// Status returns the current schema version.
func (r *Runner) Status() (int64, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scripts)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, nil
}
