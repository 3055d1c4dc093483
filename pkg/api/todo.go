package api

import "time"

// CreateTodoRequest представляет запрос на создание задачи.
// Владелец не принимается с клиента: сервер берет его из токена.
type CreateTodoRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// UpdateTodoRequest представляет частичное обновление задачи.
// Указатели различают "поле не передано" и "передано пустое/false":
// явный isCompleted=false применяется, отсутствующий - нет.
type UpdateTodoRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	IsCompleted *bool      `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
}

// TodoResponse представляет задачу в ответах API
type TodoResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
