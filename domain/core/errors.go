package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrFileRead            = errors.New("file could not be read")
	ErrUnsupportedCategory = errors.New("unsupported sport category")
	ErrInvalidParameters   = errors.New("invalid analysis parameters")

	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrColumnNotFound   = fmt.Errorf("%w: column", ErrNotFound)
	ErrSessionNotFound  = fmt.Errorf("%w: session", ErrNotFound)
	ErrNoDatasetLoaded  = errors.New("no dataset loaded")
	ErrColumnNotNumeric = errors.New("column is not numeric")

	// Warnings: the user may retry with a different choice
	ErrNoApplicableColumns = errors.New("no applicable numeric columns")

	// Analysis errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrComputation      = errors.New("statistical computation failed")
)

// Error constructors with context
func NewFileReadError(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrFileRead, source, err)
}

func NewUnsupportedCategoryError(label string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedCategory, label)
}

func NewNoApplicableColumnsError(category string) error {
	return fmt.Errorf("%w for %s", ErrNoApplicableColumns, category)
}

func NewInsufficientDataError(column string, n int) error {
	return fmt.Errorf("%w: column %q has %d usable values, need at least 2", ErrInsufficientData, column, n)
}

func NewComputationError(column string, reason string) error {
	return fmt.Errorf("%w for column %q: %s", ErrComputation, column, reason)
}

func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w %q", ErrColumnNotFound, column)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsWarning reports whether err is non-fatal and should be shown as a warning.
func IsWarning(err error) bool {
	return errors.Is(err, ErrNoApplicableColumns)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrFileRead) ||
		errors.Is(err, ErrUnsupportedCategory) ||
		errors.Is(err, ErrInvalidParameters) ||
		errors.Is(err, ErrColumnNotNumeric) ||
		errors.Is(err, ErrNoDatasetLoaded)
}

func IsAnalysisError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrComputation)
}
