package models

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageInfo holds pagination metadata for a customer listing
type PageInfo struct {
	CurrentPage    int `json:"currentPage"`
	TotalPages     int `json:"totalPages"`
	TotalCustomers int `json:"totalCustomers"`
}

// NewPageInfo creates pagination metadata. The requested page is echoed
// even when it lies beyond the last page.
func NewPageInfo(page, limit, totalCustomers int) PageInfo {
	totalPages := totalCustomers / limit
	if totalCustomers%limit > 0 {
		totalPages++
	}

	return PageInfo{
		CurrentPage:    page,
		TotalPages:     totalPages,
		TotalCustomers: totalCustomers,
	}
}

// CalculateOffset calculates the offset of the first item on a page
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// PageBounds returns the half-open range [start, end) of a page within
// total items. Pages past the end yield an empty range at total.
func PageBounds(page, limit, total int) (start, end int) {
	if page-1 >= NewPageInfo(page, limit, total).TotalPages {
		return total, total
	}

	start = CalculateOffset(page, limit)
	if limit > total-start {
		return start, total
	}
	return start, start + limit
}
