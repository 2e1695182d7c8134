package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fixmate/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ValidatePagination normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1.
// Limit defaults to DefaultPageSize if less than 1, and is capped at MaxPageSize.
func ValidatePagination(page, limit int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return Pagination{Page: page, Limit: limit}
}

// ParsePagination parses `page` and `limit` query parameters with defaults applied.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	limit := parseQueryInt(c, "limit", constants.DefaultPageSize)
	return ValidatePagination(page, limit)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates ceil(total/limit). A total of zero yields zero pages.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
