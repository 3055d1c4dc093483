package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	err := Validation([]string{"Username is required", "Email is required"})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Username is required, Email is required", err.Message)
	assert.Equal(t, []string{"Username is required", "Email is required"}, err.Messages)
}

func TestInvalidCredentials_UniformMessage(t *testing.T) {
	// Сообщение фиксированное, независимо от причины отказа
	err := InvalidCredentials()

	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "Invalid email or password", err.Message)
	assert.Empty(t, err.Messages)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantStatus int
		wantMsg    string
	}{
		{name: "unauthorized", err: Unauthorized(), wantStatus: 401, wantMsg: "Unauthorized"},
		{name: "duplicate user", err: DuplicateUser(), wantStatus: 400, wantMsg: "User with this email already exists"},
		{name: "not found", err: NotFound("Todo not found"), wantStatus: 404, wantMsg: "Todo not found"},
		{name: "invalid entity", err: InvalidEntity("Todo ID is required for update"), wantStatus: 400, wantMsg: "Todo ID is required for update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler failed: %w", NotFound("Todo not found"))

	var appErr *Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
