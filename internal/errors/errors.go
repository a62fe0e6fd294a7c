package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"sportstat/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    Classify(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise classifies it
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return Classify(err)
}

// Predefined error codes
const (
	CodeConfigInvalid       = "CONFIG_INVALID"
	CodeFileRead            = "FILE_READ_ERROR"
	CodeUnsupportedCategory = "UNSUPPORTED_CATEGORY"
	CodeNoApplicableColumns = "NO_APPLICABLE_COLUMNS"
	CodeInsufficientData    = "INSUFFICIENT_DATA"
	CodeComputation         = "COMPUTATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInternalError       = "INTERNAL_ERROR"
)

// Classify maps a domain error onto an error code
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, core.ErrFileRead):
		return CodeFileRead
	case stderrors.Is(err, core.ErrUnsupportedCategory):
		return CodeUnsupportedCategory
	case stderrors.Is(err, core.ErrNoApplicableColumns):
		return CodeNoApplicableColumns
	case stderrors.Is(err, core.ErrInsufficientData):
		return CodeInsufficientData
	case stderrors.Is(err, core.ErrComputation):
		return CodeComputation
	case stderrors.Is(err, core.ErrNotFound):
		return CodeNotFound
	case stderrors.Is(err, core.ErrInvalidParameters),
		stderrors.Is(err, core.ErrColumnNotNumeric),
		stderrors.Is(err, core.ErrNoDatasetLoaded):
		return CodeInvalidInput
	default:
		return CodeInternalError
	}
}

// HTTPStatus maps an error code onto the status returned by the web shells
func HTTPStatus(code string) int {
	switch code {
	case CodeNoApplicableColumns:
		return http.StatusOK
	case CodeUnsupportedCategory, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeFileRead, CodeInsufficientData, CodeComputation:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConfigInvalid, CodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
