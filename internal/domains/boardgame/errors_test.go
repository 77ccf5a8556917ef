package boardgame

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"boardgames-backend/internal/infrastructure/database"
)

func TestGetHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, http.StatusOK},
		{"not found", ErrGameNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup failed: %w", ErrGameNotFound), http.StatusNotFound},
		{"validation error", NewValidationError(errors.New("bad input")), http.StatusUnprocessableEntity},
		{"pool exhausted", database.ErrPoolExhausted, http.StatusServiceUnavailable},
		{"wrapped pool exhausted", fmt.Errorf("%w: no session available within 30s", database.ErrPoolExhausted), http.StatusServiceUnavailable},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatusCode(tt.err))
		})
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError(errors.New("bad input"))
	assert.True(t, IsValidationError(ve))
	assert.True(t, IsValidationError(fmt.Errorf("rejected: %w", ve)))
	assert.False(t, IsValidationError(ErrGameNotFound))
	assert.False(t, IsValidationError(nil))
}
