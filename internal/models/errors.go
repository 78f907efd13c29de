package models

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeInvalidPagination   = "INVALID_PAGINATION"
	CodeUnsupportedSize     = "UNSUPPORTED_SIZE"
	CodeUnsupportedIndustry = "UNSUPPORTED_INDUSTRY"
)

// Client input errors
var (
	ErrInvalidPaginationValue   = errors.New("invalid pagination value")
	ErrUnsupportedSizeValue     = errors.New("unsupported size value")
	ErrUnsupportedIndustryValue = errors.New("unsupported industry value")
)

// AppError represents an application-level error with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrInvalidPagination is returned when page or limit is not a positive integer
func ErrInvalidPagination() error {
	return &AppError{
		Code:    CodeInvalidPagination,
		Message: "Invalid page or limit",
		Err:     ErrInvalidPaginationValue,
	}
}

// ErrUnsupportedSize is returned when the size filter is not a known tier
func ErrUnsupportedSize(value string) error {
	return &AppError{
		Code:    CodeUnsupportedSize,
		Message: fmt.Sprintf("Unsupported size value: %q", value),
		Err:     ErrUnsupportedSizeValue,
	}
}

// ErrUnsupportedIndustry is returned when the industry filter is not a known industry
func ErrUnsupportedIndustry(value string) error {
	return &AppError{
		Code:    CodeUnsupportedIndustry,
		Message: fmt.Sprintf("Unsupported industry value: %q", value),
		Err:     ErrUnsupportedIndustryValue,
	}
}
