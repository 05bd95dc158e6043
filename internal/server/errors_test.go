package server

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrRunNotFound_Message(t *testing.T) {
	runID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	err := &ErrRunNotFound{RunID: runID}
	assert.Contains(t, err.Error(), "run not found")
	assert.Contains(t, err.Error(), runID.String())
}

func TestErrValidation_Message(t *testing.T) {
	err := &ErrValidation{Field: "resume_text", Message: "too short"}
	assert.Contains(t, err.Error(), "resume_text")
	assert.Contains(t, err.Error(), "too short")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"run not found", &ErrRunNotFound{}, http.StatusNotFound},
		{"validation", &ErrValidation{}, http.StatusBadRequest},
		{"database unavailable", &ErrDatabaseUnavailable{}, http.StatusServiceUnavailable},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
