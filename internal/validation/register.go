package validation

import "strings"

// RegisterFieldMessages возвращает по одному сообщению на каждое
// отсутствующее обязательное поле регистрации.
// Пустой результат означает, что все поля присутствуют.
func RegisterFieldMessages(username, email, password string) []string {
	var messages []string

	if strings.TrimSpace(username) == "" {
		messages = append(messages, "Username is required")
	}
	if strings.TrimSpace(email) == "" {
		messages = append(messages, "Email is required")
	}
	if password == "" {
		messages = append(messages, "Password is required")
	}

	return messages
}

// NormalizeEmail приводит email к каноническому виду для проверки
// уникальности и хранения: lowercase без внешних пробелов
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
