package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/scoring"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var emptyResume *scoring.ErrEmptyResume
	var missingField *scoring.ErrMissingField
	var invalidPayload *scoring.ErrInvalidPayload
	var schemaErr *schemas.ValidationError
	var validationErrs validator.ValidationErrors
	var fetchErr *fetch.Error

	switch {
	case errors.As(err, &emptyResume),
		errors.As(err, &missingField),
		errors.As(err, &invalidPayload),
		errors.As(err, &schemaErr),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
