package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// Database & Storage Specific Errors
var (
	// ErrUniqueConstraintViolation is an ErrAlreadyExists pinned to one field.
	ErrUniqueConstraintViolation = fmt.Errorf("unique constraint violation: %w", ErrAlreadyExists)
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	var apiErr *ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}

	// Check for common database errors and provide more specific messages
	if cause != nil {
		errStr := strings.ToLower(cause.Error())
		switch {
		case IsDuplicateKey(cause):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
				Details:    details,
				Cause:      cause,
			}
		case errors.Is(cause, gorm.ErrRecordNotFound), strings.Contains(errStr, "not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func NewUniqueConstraintViolationError(entity, field string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrUniqueConstraintViolation,
		Details:    fmt.Sprintf("Unique constraint violation on %s.%s", entity, field),
		Cause:      cause,
		Field:      field,
	}
}

// IsDuplicateKey reports whether a driver error is a unique index violation,
// translated by gorm or not.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint")
}

func IsUniqueConstraintViolationError(err error) bool {
	return errors.Is(err, ErrUniqueConstraintViolation)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
