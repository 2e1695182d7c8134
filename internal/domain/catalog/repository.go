package catalog

import "context"

// Repository defines catalog persistence operations.
// Lookup methods are exact-match on their filter strings; Search goes through
// the full-text index. List methods return empty slices, and GetSolution
// returns nil, when nothing matches.
type Repository interface {
	ListBrands(ctx context.Context) ([]string, error)
	ListAppliances(ctx context.Context, brand string) ([]string, error)
	ListIssueTitles(ctx context.Context, brand, appliance string) ([]string, error)
	GetSolution(ctx context.Context, brand, appliance, issueTitle string) (*Solution, error)

	// Search runs the given full-text match expression and returns one page
	// of matching issues plus the total match count.
	Search(ctx context.Context, match string, limit, offset int) ([]*Issue, int, error)

	// ReplaceAll atomically replaces the whole catalog with the given issues
	// and rebuilds the full-text index. Used by the offline loader only.
	ReplaceAll(ctx context.Context, issues []*Issue) (int, error)
}
