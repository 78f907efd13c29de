package models

import (
	"fmt"
	"strconv"
)

// FilterAll is the filter value that applies no constraint
const FilterAll = "All"

// CustomerQueryParams holds the raw query string values of a customer
// listing request. An empty string means the parameter was not given.
type CustomerQueryParams struct {
	Page     string
	Limit    string
	Size     string
	Industry string
}

// CustomerFilter holds validated filtering and pagination options.
// A zero Size or empty Industry matches every customer.
type CustomerFilter struct {
	Page     int
	Limit    int
	Size     Size
	Industry Industry
}

// ParseCustomerFilter validates raw parameters and applies defaults.
// Checks run in order: pagination, size, industry.
func ParseCustomerFilter(params CustomerQueryParams) (CustomerFilter, error) {
	page, err := parsePositiveInt(params.Page, DefaultPage)
	if err != nil {
		return CustomerFilter{}, ErrInvalidPagination()
	}

	limit, err := parsePositiveInt(params.Limit, DefaultLimit)
	if err != nil {
		return CustomerFilter{}, ErrInvalidPagination()
	}

	filter := CustomerFilter{
		Page:  page,
		Limit: limit,
	}

	if params.Size != "" && params.Size != FilterAll {
		size, ok := ParseSize(params.Size)
		if !ok {
			return CustomerFilter{}, ErrUnsupportedSize(params.Size)
		}
		filter.Size = size
	}

	if params.Industry != "" && params.Industry != FilterAll {
		industry, ok := ParseIndustry(params.Industry)
		if !ok {
			return CustomerFilter{}, ErrUnsupportedIndustry(params.Industry)
		}
		filter.Industry = industry
	}

	return filter, nil
}

// Matches reports whether the customer satisfies the size and industry filters
func (f CustomerFilter) Matches(c *Customer) bool {
	if f.Size != 0 && c.Size() != f.Size {
		return false
	}
	if f.Industry != "" && c.Industry != f.Industry {
		return false
	}
	return true
}

// SizeLabel returns the size filter as it appears in a query string
func (f CustomerFilter) SizeLabel() string {
	if f.Size == 0 {
		return FilterAll
	}
	return f.Size.String()
}

// IndustryLabel returns the industry filter as it appears in a query string
func (f CustomerFilter) IndustryLabel() string {
	if f.Industry == "" {
		return FilterAll
	}
	return string(f.Industry)
}

// Key returns a canonical representation of the filter. Requests that
// differ only in omitted defaults share the same key.
func (f CustomerFilter) Key() string {
	return fmt.Sprintf("page=%d&limit=%d&size=%s&industry=%s",
		f.Page, f.Limit, f.SizeLabel(), f.IndustryLabel())
}

func parsePositiveInt(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("value %d is not positive", n)
	}
	return n, nil
}
