package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alumnet/backend/internal/pkg/apperrors"
)

// BindingError converts a gin binding failure into a 400-class app error
// carrying a readable message for the first failing field.
func BindingError(err error) error {
	if tooLarge := BodyTooLarge(err); tooLarge != nil {
		return tooLarge
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperrors.NewMissingFieldError(formatValidationError(fe))
		}
		return apperrors.NewValidationError(formatValidationError(fe))
	}
	return apperrors.NewBadRequestError("Invalid request body")
}

// BodyTooLarge returns a 413-class error when err came from a body cut off by
// BodyLimit, nil otherwise
func BodyTooLarge(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return apperrors.NewPayloadTooLargeError(fmt.Sprintf("Request body exceeds %d MB", mbe.Limit>>20))
	}
	return nil
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param() + " characters"
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " is invalid"
	}
}

// jsonFieldName lowers the first letter: GraduationYear -> graduationYear
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
