package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string     `json:"id"`                  // UUID пользователя
	Username     string     `json:"username"`            // опциональное отображаемое имя
	Email        string     `json:"email"`               // уникальный email (хранится в lowercase)
	PasswordHash string     `json:"-"`                   // bcrypt хеш пароля, наружу не отдается
	CreatedAt    time.Time  `json:"created_at"`          // время создания
	DeletedAt    *time.Time `json:"deleted_at,omitempty"` // маркер soft delete; установлен — аккаунт не аутентифицируется
}

// IsDeleted сообщает, помечен ли аккаунт как удаленный
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
