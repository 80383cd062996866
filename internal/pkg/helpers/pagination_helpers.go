package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/api/internal/app/models/dto"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1 // Page numbers are 1-based
)

// ClampPagination normalizes page and limit to their allowed ranges.
func ClampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, clampedLimit int) {
	page, clampedLimit = ClampPagination(page, limit)
	offset = uint64((page - 1) * clampedLimit)
	return offset, clampedLimit
}

// NewPagination creates the standard pagination envelope.
// Zero records means zero pages and no next page.
func NewPagination(totalRecords int64, page, limit int) dto.Pagination {
	page, limit = ClampPagination(page, limit)

	totalPages := 0
	if totalRecords > 0 {
		totalPages = int(math.Ceil(float64(totalRecords) / float64(limit)))
	}

	return dto.Pagination{
		CurrentPage:    page,
		TotalPages:     totalPages,
		TotalRecords:   totalRecords,
		RecordsPerPage: limit,
		HasNextPage:    page < totalPages,
		HasPrevPage:    page > 1 && totalPages > 0,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return page, limit
}
