package boardgame

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"boardgames-backend/internal/infrastructure/database"
)

// ErrGameNotFound is returned when the requested id matches no row.
//
// FLOW:
// GET /api/v1/games/999 => repository SELECT ... WHERE id = $1
// => pgx.ErrNoRows => ErrGameNotFound => handler maps to 404
var ErrGameNotFound = errors.New("board game not found")

// ValidationError carries per-field messages from request validation.
// Fields marshals to a {field: message} JSON object.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

// NewValidationError wraps an ozzo validation result. A non-ozzo error is
// reported under a generic "request" key.
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

// GetHTTPStatusCode maps a domain error to its HTTP status. Unknown errors
// are persistence failures and surface as 500.
func GetHTTPStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrGameNotFound):
		return http.StatusNotFound
	case IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, database.ErrPoolExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
