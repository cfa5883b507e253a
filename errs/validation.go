package errs

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NewValidationError converts ozzo-validation results into a 400 ApiErr.
// The first failing field (alphabetically) is reported in Field; Details
// lists every failure. Non-validation errors pass through unchanged.
func NewValidationError(err error) error {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		if fieldErr != nil {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, fieldErrs[field].Error()))
	}

	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    strings.Join(parts, "; "),
		Field:      fields[0],
		Cause:      err,
	}
}
