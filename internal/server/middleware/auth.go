package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/taskkeeper/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки токена доступа.
// Это единственные ворота к защищенным маршрутам: ни один handler
// ниже по цепочке не достижим без разрешенного id пользователя.
func AuthMiddleware(logger *slog.Logger, tokenConfig handlers.TokenConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				unauthorized(w)
				return
			}

			// Заголовок с префиксом "Bearer " несет токен в суффиксе;
			// заголовок без узнаваемой схемы трактуется как сам токен -
			// оба варианта проходят одну и ту же проверку
			tokenString := authHeader
			if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}

			userID, err := handlers.ValidateToken(tokenConfig, tokenString)
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, userID)

			logger.Debug("user authenticated", "user_id", userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized отвечает единообразным 401 без деталей причины
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
}
