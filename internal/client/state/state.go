// Package state содержит явный контейнер состояния клиента.
//
// Вместо реактивного стора с неявным отслеживанием мутаций состояние
// меняется только через методы-действия, а заинтересованные стороны
// подписываются через Subscribe и читают снимок через GetState.
package state

import (
	"sync"

	"github.com/iudanet/taskkeeper/internal/models"
)

// State - снимок клиентского состояния. Возвращается по значению,
// слайс Todos копируется: подписчики не могут мутировать контейнер.
type State struct {
	Authenticated bool
	Username      string
	Todos         []models.Todo
	Loading       bool
	Err           string
}

// Listener получает снимок состояния после каждого изменения
type Listener func(State)

// Container хранит состояние и список подписчиков
type Container struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// NewContainer создает пустой контейнер
func NewContainer() *Container {
	return &Container{
		listeners: make(map[int]Listener),
	}
}

// GetState возвращает текущий снимок состояния
func (c *Container) GetState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe регистрирует listener и возвращает функцию отписки.
// Отписка идемпотентна.
func (c *Container) Subscribe(l Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// SetAuthenticated отмечает вход или выход пользователя.
// Выход сбрасывает список задач.
func (c *Container) SetAuthenticated(authenticated bool, username string) {
	c.update(func(s *State) {
		s.Authenticated = authenticated
		s.Username = username
		if !authenticated {
			s.Todos = nil
		}
	})
}

// SetLoading выставляет флаг выполняющейся операции
func (c *Container) SetLoading(loading bool) {
	c.update(func(s *State) {
		s.Loading = loading
		if loading {
			s.Err = ""
		}
	})
}

// SetError записывает текст последней ошибки
func (c *Container) SetError(msg string) {
	c.update(func(s *State) {
		s.Err = msg
		s.Loading = false
	})
}

// SetTodos заменяет список задач целиком
func (c *Container) SetTodos(todos []models.Todo) {
	c.update(func(s *State) {
		s.Todos = append([]models.Todo(nil), todos...)
		s.Loading = false
		s.Err = ""
	})
}

// UpsertTodo обновляет задачу по id или добавляет ее в конец списка
func (c *Container) UpsertTodo(todo models.Todo) {
	c.update(func(s *State) {
		for i := range s.Todos {
			if s.Todos[i].ID == todo.ID {
				s.Todos[i] = todo
				return
			}
		}
		s.Todos = append(s.Todos, todo)
	})
}

// RemoveTodo удаляет задачу из списка по id
func (c *Container) RemoveTodo(id string) {
	c.update(func(s *State) {
		filtered := s.Todos[:0]
		for _, t := range s.Todos {
			if t.ID != id {
				filtered = append(filtered, t)
			}
		}
		s.Todos = filtered
	})
}

// CompletedTodos возвращает выполненные задачи текущего снимка
func (c *Container) CompletedTodos() []models.Todo {
	return filterByCompletion(c.GetState().Todos, true)
}

// PendingTodos возвращает невыполненные задачи текущего снимка
func (c *Container) PendingTodos() []models.Todo {
	return filterByCompletion(c.GetState().Todos, false)
}

func filterByCompletion(todos []models.Todo, completed bool) []models.Todo {
	var out []models.Todo
	for _, t := range todos {
		if t.IsCompleted == completed {
			out = append(out, t)
		}
	}
	return out
}

// update применяет мутацию под локом и уведомляет подписчиков снимком.
// Уведомление идет вне лока: listener может звать GetState/Subscribe.
func (c *Container) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.snapshotLocked()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

func (c *Container) snapshotLocked() State {
	s := c.state
	s.Todos = append([]models.Todo(nil), c.state.Todos...)
	return s
}
