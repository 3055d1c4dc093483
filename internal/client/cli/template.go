package cli

import (
	"fmt"
	"time"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/pkg/api"
)

// todoFromResponse переводит ответ API во внутреннюю модель
// для контейнера состояния
func todoFromResponse(r api.TodoResponse) models.Todo {
	return models.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		DueDate:     r.DueDate,
		CreatedAt:   r.CreatedAt,
	}
}

// printTodo выводит полную карточку задачи
func printTodo(todo api.TodoResponse) {
	fmt.Printf("ID:          %s\n", todo.ID)
	fmt.Printf("Title:       %s\n", todo.Title)
	if todo.Description != "" {
		fmt.Printf("Description: %s\n", todo.Description)
	}
	fmt.Printf("Completed:   %s\n", completedMark(todo.IsCompleted))
	if todo.DueDate != nil {
		fmt.Printf("Due:         %s\n", todo.DueDate.Format("2006-01-02"))
	}
	fmt.Printf("Created:     %s\n", todo.CreatedAt.Format(time.RFC3339))
}

// printTodoLine выводит задачу одной строкой для списка
func printTodoLine(todo models.Todo) {
	due := "-"
	if todo.DueDate != nil {
		due = todo.DueDate.Format("2006-01-02")
	}
	fmt.Printf("[%s] %-36s  due: %-10s  %s\n", completedMark(todo.IsCompleted), todo.ID, due, todo.Title)
}

func completedMark(completed bool) string {
	if completed {
		return "x"
	}
	return " "
}
