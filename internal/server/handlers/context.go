package handlers

import "context"

// contextKey - приватный тип ключей контекста, чтобы избежать коллизий
type contextKey string

// UserIDKey - ключ контекста с id аутентифицированного пользователя
const UserIDKey contextKey = "user_id"

// UserIDFromContext возвращает id пользователя, положенный auth middleware
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
