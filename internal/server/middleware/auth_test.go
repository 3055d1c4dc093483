package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskkeeper/internal/server/handlers"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenConfig() handlers.TokenConfig {
	return handlers.TokenConfig{
		Secret:   []byte("test-secret-key-for-jwt-signing"),
		TokenTTL: time.Hour,
	}
}

// nextRecorder фиксирует, дошел ли запрос до handler и с каким user id
type nextRecorder struct {
	called bool
	userID string
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, _ = handlers.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testTokenConfig()
	token, err := handlers.GenerateToken(cfg, "user-123")
	require.NoError(t, err)

	next := &nextRecorder{}
	mw := AuthMiddleware(testLogger(), cfg)(next.handler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, next.called)
	assert.Equal(t, "user-123", next.userID)
}

func TestAuthMiddleware_RawTokenWithoutScheme(t *testing.T) {
	cfg := testTokenConfig()
	token, err := handlers.GenerateToken(cfg, "user-123")
	require.NoError(t, err)

	next := &nextRecorder{}
	mw := AuthMiddleware(testLogger(), cfg)(next.handler())

	// Заголовок без префикса схемы равнозначен заголовку с "Bearer "
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, next.called)
	assert.Equal(t, "user-123", next.userID)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	cfg := testTokenConfig()

	expired, err := handlers.GenerateToken(handlers.TokenConfig{Secret: cfg.Secret, TokenTTL: -time.Minute}, "user-123")
	require.NoError(t, err)

	foreign, err := handlers.GenerateToken(handlers.TokenConfig{Secret: []byte("other-secret"), TokenTTL: time.Hour}, "user-123")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "expired token", header: "Bearer " + expired},
		{name: "foreign signature", header: "Bearer " + foreign},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "garbage without scheme", header: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &nextRecorder{}
			mw := AuthMiddleware(testLogger(), cfg)(next.handler())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			mw.ServeHTTP(w, req)

			// Запрос не доходит до handler: middleware - единственные ворота
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, next.called)
			assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
		})
	}
}
