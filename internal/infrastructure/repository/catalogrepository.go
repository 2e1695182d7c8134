package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/infrastructure/persistence/models"
	"fixmate/internal/shared/logger"
)

// CatalogRepository implements the catalog repository over gorm/SQLite.
// Every filter value is bound as a query parameter; user input is never
// concatenated into SQL.
type CatalogRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB, logger logger.Interface) catalog.Repository {
	return &CatalogRepository{
		db:     db,
		logger: logger,
	}
}

// ListBrands returns all distinct brand names, sorted case-insensitively.
func (r *CatalogRepository) ListBrands(ctx context.Context) ([]string, error) {
	brands := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.IssueModel{}).
		Distinct().
		Order("brand COLLATE NOCASE").
		Pluck("brand", &brands).Error
	if err != nil {
		r.logger.Errorw("failed to list brands", "error", err)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// ListAppliances returns the distinct appliances of one brand, sorted
// case-insensitively. Unknown brands yield an empty list.
func (r *CatalogRepository) ListAppliances(ctx context.Context, brand string) ([]string, error) {
	appliances := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.IssueModel{}).
		Where("brand = ?", brand).
		Distinct().
		Order("appliance COLLATE NOCASE").
		Pluck("appliance", &appliances).Error
	if err != nil {
		r.logger.Errorw("failed to list appliances", "brand", brand, "error", err)
		return nil, fmt.Errorf("failed to list appliances: %w", err)
	}
	return appliances, nil
}

// ListIssueTitles returns the issue titles for a (brand, appliance) pair,
// sorted case-insensitively.
func (r *CatalogRepository) ListIssueTitles(ctx context.Context, brand, appliance string) ([]string, error) {
	titles := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.IssueModel{}).
		Where("brand = ? AND appliance = ?", brand, appliance).
		Order("issue_title COLLATE NOCASE").
		Pluck("issue_title", &titles).Error
	if err != nil {
		r.logger.Errorw("failed to list issues", "brand", brand, "appliance", appliance, "error", err)
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return titles, nil
}

// GetSolution fetches the solution for an exact (brand, appliance, issue)
// triple. Returns nil when no row matches.
func (r *CatalogRepository) GetSolution(ctx context.Context, brand, appliance, issueTitle string) (*catalog.Solution, error) {
	var model models.IssueModel
	err := r.db.WithContext(ctx).
		Select("solution", "brand_page").
		Where("brand = ? AND appliance = ? AND issue_title = ?", brand, appliance, issueTitle).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get solution", "brand", brand, "appliance", appliance, "error", err)
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	return &catalog.Solution{
		Solution:  model.Solution,
		BrandPage: model.BrandPage,
	}, nil
}

// Search runs an FTS5 MATCH over the issue corpus and returns one page of
// rows plus the total match count.
func (r *CatalogRepository) Search(ctx context.Context, match string, limit, offset int) ([]*catalog.Issue, int, error) {
	var rows []models.IssueModel
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.id, i.brand, i.appliance, i.issue_title, i.solution, i.brand_page
		FROM issues_fts f
		JOIN issues i ON i.id = f.rowid
		WHERE issues_fts MATCH ?
		LIMIT ? OFFSET ?`, match, limit, offset).Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("full-text search failed", "match", match, "error", err)
		return nil, 0, fmt.Errorf("full-text search failed: %w", err)
	}

	var total int
	err = r.db.WithContext(ctx).Raw(
		`SELECT count(*) FROM issues_fts WHERE issues_fts MATCH ?`, match).Scan(&total).Error
	if err != nil {
		r.logger.Errorw("full-text count failed", "match", match, "error", err)
		return nil, 0, fmt.Errorf("full-text count failed: %w", err)
	}

	issues := make([]*catalog.Issue, 0, len(rows))
	for _, row := range rows {
		issues = append(issues, &catalog.Issue{
			ID:         row.ID,
			Brand:      row.Brand,
			Appliance:  row.Appliance,
			IssueTitle: row.IssueTitle,
			Solution:   row.Solution,
			BrandPage:  row.BrandPage,
		})
	}
	return issues, total, nil
}

// ReplaceAll replaces the whole catalog in a single transaction and rebuilds
// the FTS index from the base table, so readers never see a half-cleared
// catalog and the index cannot drift.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, issues []*catalog.Issue) (int, error) {
	rows := make([]models.IssueModel, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, models.IssueModel{
			Brand:      issue.Brand,
			Appliance:  issue.Appliance,
			IssueTitle: issue.IssueTitle,
			Solution:   issue.Solution,
			BrandPage:  issue.BrandPage,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM issues").Error; err != nil {
			return fmt.Errorf("failed to clear issues: %w", err)
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 500).Error; err != nil {
				return fmt.Errorf("failed to insert issues: %w", err)
			}
		}
		if err := tx.Exec("INSERT INTO issues_fts(issues_fts) VALUES('rebuild')").Error; err != nil {
			return fmt.Errorf("failed to rebuild search index: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("catalog replace failed", "error", err)
		return 0, err
	}

	r.logger.Infow("catalog replaced", "rows", len(rows))
	return len(rows), nil
}
