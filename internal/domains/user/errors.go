package user

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"boardgames-backend/internal/infrastructure/database"
)

var ErrUserNotFound = errors.New("user not found")

// ValidationError carries per-field messages from request validation.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

func NewValidationError(err error) *ValidationError {
	var fields validation.Errors
	if !errors.As(err, &fields) {
		fields = validation.Errors{"request": err}
	}
	return &ValidationError{Fields: fields}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func GetHTTPStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, database.ErrPoolExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
