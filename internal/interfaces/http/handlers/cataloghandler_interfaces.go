package handlers

import (
	"context"

	"fixmate/internal/application/catalog/usecases"
)

// Use case interfaces consumed by CatalogHandler. Declared here so tests can
// substitute mocks.

type ListBrandsExecutor interface {
	Execute(ctx context.Context) ([]string, error)
}

type ListAppliancesExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListAppliancesCommand) ([]string, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListIssuesCommand) ([]string, error)
}

type GetSolutionExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetSolutionCommand) (*usecases.GetSolutionResult, error)
}

type SearchIssuesExecutor interface {
	Execute(ctx context.Context, cmd usecases.SearchIssuesCommand) (*usecases.SearchIssuesResult, error)
}
