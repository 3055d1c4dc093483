package models

import "time"

// Todo представляет задачу пользователя.
// UserID — владелец записи, назначается при создании и не меняется.
// Все операции чтения и изменения фильтруются по (ID, UserID).
type Todo struct {
	ID          string     `json:"id"`                 // UUID задачи
	UserID      string     `json:"-"`                  // владелец, наружу не отдается
	Title       string     `json:"title"`              // обязательный непустой заголовок
	Description string     `json:"description"`        // опциональное описание
	IsCompleted bool       `json:"isCompleted"`        // флаг выполнения, по умолчанию false
	DueDate     *time.Time `json:"dueDate,omitempty"`  // опциональный срок
	CreatedAt   time.Time  `json:"createdAt"`          // время создания
}

// TodoChanges описывает частичное обновление задачи.
// nil-поле означает "не трогать"; явный указатель применяется,
// в том числе IsCompleted=false.
type TodoChanges struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	IsCompleted *bool      `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
}
