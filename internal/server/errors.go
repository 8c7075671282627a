package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/roommate-matcher/internal/schemas"
	"github.com/jonathan/roommate-matcher/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		fieldErrs     validator.ValidationErrors
		schemaErr     *schemas.ValidationError
		maxBytesErr   *http.MaxBytesError
	)

	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrAlreadyBootstrapped), errors.Is(err, session.ErrAlreadyAmplified):
		return http.StatusConflict
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, session.ErrInvalidInput),
		errors.As(err, &validationErr),
		errors.As(err, &fieldErrs),
		errors.As(err, &schemaErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
