// Package apperr содержит доменные ошибки, которые переводятся
// в HTTP ответы. Любая другая ошибка на границе HTTP превращается
// в generic 500 без деталей, а исходная причина только логируется.
package apperr

import (
	"net/http"
	"strings"
)

// Error - доменная ошибка с HTTP статусом и сообщением для клиента.
// Messages заполняется только для ошибок валидации аргументов
// (по одному сообщению на каждое отсутствующее поле).
type Error struct {
	Message  string
	Messages []string
	Status   int
}

func (e *Error) Error() string {
	return e.Message
}

// Validation строит ошибку 400 с одним сообщением на каждое
// отсутствующее поле. Message - это все сообщения, склеенные через ", "
func Validation(messages []string) *Error {
	return &Error{
		Status:   http.StatusBadRequest,
		Message:  strings.Join(messages, ", "),
		Messages: messages,
	}
}

// InvalidCredentials - единый ответ 401 для всех причин отказа логина:
// несуществующий email, удаленный аккаунт, неверный пароль.
// Одинаковое сообщение не дает перечислять зарегистрированные email.
func InvalidCredentials() *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Message: "Invalid email or password",
	}
}

// Unauthorized - ответ 401 для запросов без валидного токена
func Unauthorized() *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized",
	}
}

// DuplicateUser - ответ 400 при повторной регистрации email
func DuplicateUser() *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: "User with this email already exists",
	}
}

// NotFound - ответ 404; для чужих и несуществующих записей
// сообщение обязано быть одинаковым
func NotFound(message string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// InvalidEntity - ответ 400 при отсутствии обязательного идентификатора
// в операции update/delete
func InvalidEntity(message string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}
