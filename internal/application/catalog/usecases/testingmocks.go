package usecases

import (
	"context"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/shared/logger"
)

// Test doubles shared by the use case tests in this package.

type mockCatalogRepo struct {
	brands     []string
	appliances []string
	titles     []string
	solution   *catalog.Solution
	issues     []*catalog.Issue
	total      int
	err        error

	lastMatch  string
	lastLimit  int
	lastOffset int
}

func (m *mockCatalogRepo) ListBrands(ctx context.Context) ([]string, error) {
	return m.brands, m.err
}

func (m *mockCatalogRepo) ListAppliances(ctx context.Context, brand string) ([]string, error) {
	return m.appliances, m.err
}

func (m *mockCatalogRepo) ListIssueTitles(ctx context.Context, brand, appliance string) ([]string, error) {
	return m.titles, m.err
}

func (m *mockCatalogRepo) GetSolution(ctx context.Context, brand, appliance, issueTitle string) (*catalog.Solution, error) {
	return m.solution, m.err
}

func (m *mockCatalogRepo) Search(ctx context.Context, match string, limit, offset int) ([]*catalog.Issue, int, error) {
	m.lastMatch = match
	m.lastLimit = limit
	m.lastOffset = offset
	return m.issues, m.total, m.err
}

func (m *mockCatalogRepo) ReplaceAll(ctx context.Context, issues []*catalog.Issue) (int, error) {
	return len(issues), m.err
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
