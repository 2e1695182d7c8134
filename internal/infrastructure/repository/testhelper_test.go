package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/infrastructure/migration"
	"fixmate/internal/shared/logger"
)

// newTestDB opens an in-memory database with the full schema applied.
// A single connection is forced because each connection to ":memory:" would
// otherwise get its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.NewRunner(db).Up())
	return db
}

func testIssues() []*catalog.Issue {
	return []*catalog.Issue{
		{Brand: "Bosch", Appliance: "Dishwasher", IssueTitle: "Not draining", Solution: "Check the drain hose for kinks and clear the filter.", BrandPage: "https://bosch.example.com/dishwasher"},
		{Brand: "Bosch", Appliance: "Dishwasher", IssueTitle: "Door not closing", Solution: "Realign the door latch and check the strike plate.", BrandPage: "https://bosch.example.com/dishwasher"},
		{Brand: "Bosch", Appliance: "Washing Machine", IssueTitle: "Strange noise", Solution: "Level the appliance and inspect the drum bearings.", BrandPage: "https://bosch.example.com/washing-machine"},
		{Brand: "LG", Appliance: "Dryer", IssueTitle: "No heat", Solution: "Test the heating element continuity and the thermal fuse.", BrandPage: "https://lg.example.com/dryer"},
		{Brand: "acme", Appliance: "Refrigerator", IssueTitle: "Not cooling", Solution: "Clean the condenser coil and check refrigerant levels.", BrandPage: "https://acme.example.com/refrigerator"},
	}
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
