package state

import (
	"strconv"
	"strings"

	"github.com/iudanet/taskkeeper/internal/models"
)

// Поля фильтрации списка задач
const (
	FilterByTitle       = "title"
	FilterByDescription = "description"
	FilterByIsCompleted = "isCompleted"
)

// FilterTodos возвращает задачи, подходящие под текст фильтра.
// Пустой текст отключает фильтрацию. Сравнение без учета регистра;
// для isCompleted текст должен быть ровно "true" или "false".
// Неизвестное поле не матчит ничего.
func FilterTodos(todos []models.Todo, filterText, filterBy string) []models.Todo {
	if filterText == "" {
		return todos
	}

	needle := strings.TrimSpace(strings.ToLower(filterText))

	var out []models.Todo
	for _, todo := range todos {
		if matchTodo(todo, needle, filterBy) {
			out = append(out, todo)
		}
	}
	return out
}

func matchTodo(todo models.Todo, needle, filterBy string) bool {
	switch filterBy {
	case FilterByTitle:
		return strings.Contains(strings.ToLower(todo.Title), needle)
	case FilterByDescription:
		return strings.Contains(strings.ToLower(todo.Description), needle)
	case FilterByIsCompleted:
		return strconv.FormatBool(todo.IsCompleted) == needle
	default:
		return false
	}
}
