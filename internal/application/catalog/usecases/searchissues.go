package usecases

import (
	"context"
	"fmt"
	"strings"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/shared/constants"
	"fixmate/internal/shared/errors"
	"fixmate/internal/shared/logger"
	"fixmate/internal/shared/utils"
)

type SearchIssuesCommand struct {
	Query string
	Page  int
	Limit int
}

type SearchItem struct {
	Brand           string `json:"brand"`
	Appliance       string `json:"appliance"`
	Issue           string `json:"issue"`
	SolutionSnippet string `json:"solution_snippet"`
}

type SearchIssuesResult struct {
	Total int
	Page  int
	Pages int
	Items []SearchItem
}

type SearchIssuesUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewSearchIssuesUseCase(repo catalog.Repository, logger logger.Interface) *SearchIssuesUseCase {
	return &SearchIssuesUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *SearchIssuesUseCase) Execute(ctx context.Context, cmd SearchIssuesCommand) (*SearchIssuesResult, error) {
	// FTS5 query syntax is exposed to callers, but literal double quotes are
	// replaced with spaces so a stray quote cannot break the MATCH parser.
	match := strings.ReplaceAll(strings.TrimSpace(cmd.Query), `"`, " ")
	if strings.TrimSpace(match) == "" {
		return nil, errors.NewValidationError("Missing query parameter 'q'")
	}

	p := utils.ValidatePagination(cmd.Page, cmd.Limit)

	issues, total, err := uc.repo.Search(ctx, match, p.Limit, p.Offset())
	if err != nil {
		uc.logger.Errorw("search failed", "query", cmd.Query, "error", err)
		return nil, fmt.Errorf("search failed: %w", err)
	}

	items := make([]SearchItem, 0, len(issues))
	for _, issue := range issues {
		items = append(items, SearchItem{
			Brand:           issue.Brand,
			Appliance:       issue.Appliance,
			Issue:           issue.IssueTitle,
			SolutionSnippet: snippet(issue.Solution, constants.SnippetMaxLength),
		})
	}

	return &SearchIssuesResult{
		Total: total,
		Page:  p.Page,
		Pages: utils.TotalPages(total, p.Limit),
		Items: items,
	}, nil
}

// snippet truncates to at most max characters, counting runes so multi-byte
// text is never cut mid-character.
func snippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
