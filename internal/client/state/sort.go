package state

import (
	"sort"
	"strings"

	"github.com/iudanet/taskkeeper/internal/models"
)

// SortOrder - направление сортировки
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Поля сортировки списка задач
const (
	SortByTitle       = "title"
	SortByDueDate     = "dueDate"
	SortByIsCompleted = "isCompleted"
)

// SortTodos возвращает отсортированную копию списка.
// Задачи без срока считаются бесконечно поздними: в порядке возрастания
// они идут последними. Неизвестное поле оставляет исходный порядок.
func SortTodos(todos []models.Todo, sortBy string, order SortOrder) []models.Todo {
	out := append([]models.Todo(nil), todos...)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareTodos(out[i], out[j], sortBy)
		if order == SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})

	return out
}

func compareTodos(a, b models.Todo, sortBy string) int {
	switch sortBy {
	case SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case SortByDueDate:
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return 0
		case a.DueDate == nil:
			return 1
		case b.DueDate == nil:
			return -1
		case a.DueDate.Before(*b.DueDate):
			return -1
		case a.DueDate.After(*b.DueDate):
			return 1
		default:
			return 0
		}
	case SortByIsCompleted:
		switch {
		case a.IsCompleted == b.IsCompleted:
			return 0
		case a.IsCompleted:
			return 1
		default:
			return -1
		}
	default:
		return 0
	}
}
