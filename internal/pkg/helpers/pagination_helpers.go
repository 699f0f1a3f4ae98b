package helpers

import "math"

// Pagination constants
const (
	// DefaultPage is the default page number
	DefaultPage = 1
	// DefaultPageSize is the default page size
	DefaultPageSize = 10
	// MaxPageSize is the maximum allowed page size
	MaxPageSize = 100
)

// NormalizePagination clamps page and pageSize to valid values.
// Non-positive values fall back to the defaults and pageSize is capped.
func NormalizePagination(page, pageSize int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// CalculateOffsetLimit converts page/pageSize into SQL offset and limit
func CalculateOffsetLimit(page, pageSize int) (offset, limit uint64) {
	page, pageSize = NormalizePagination(page, pageSize)
	offset = uint64((page - 1) * pageSize)
	limit = uint64(pageSize)
	return offset, limit
}

// TotalPages computes the number of pages for a result set
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(pageSize)))
}
