package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // отображаемое имя
	Email    string `json:"email"`    // email, уникальный без учета регистра
	Password string `json:"password"` // пароль в открытом виде, хешируется на сервере
}

// UserResponse представляет пользователя в ответах API.
// Хеш пароля наружу не отдается.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse представляет ответ на успешную регистрацию.
// Регистрация возвращает и пользователя, и токен; логин - только токен.
// Асимметрия - осознанная часть контракта.
type RegisterResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse представляет ответ с ошибкой.
// Messages заполняется только для ошибок валидации
// (по одному сообщению на каждое отсутствующее поле).
type ErrorResponse struct {
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
}
