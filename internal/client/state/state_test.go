package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskkeeper/internal/models"
)

func TestContainer_InitialState(t *testing.T) {
	c := NewContainer()

	s := c.GetState()
	assert.False(t, s.Authenticated)
	assert.Empty(t, s.Username)
	assert.Empty(t, s.Todos)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Err)
}

func TestContainer_SetAuthenticated(t *testing.T) {
	c := NewContainer()

	c.SetAuthenticated(true, "alice")
	s := c.GetState()
	assert.True(t, s.Authenticated)
	assert.Equal(t, "alice", s.Username)

	// Выход сбрасывает задачи
	c.SetTodos([]models.Todo{{ID: "1", Title: "a"}})
	c.SetAuthenticated(false, "")
	s = c.GetState()
	assert.False(t, s.Authenticated)
	assert.Empty(t, s.Todos)
}

func TestContainer_SubscribeNotifiesOnEveryChange(t *testing.T) {
	c := NewContainer()

	var seen []State
	unsubscribe := c.Subscribe(func(s State) {
		seen = append(seen, s)
	})

	c.SetLoading(true)
	c.SetTodos([]models.Todo{{ID: "1", Title: "a"}})

	require.Len(t, seen, 2)
	assert.True(t, seen[0].Loading)
	assert.Len(t, seen[1].Todos, 1)
	assert.False(t, seen[1].Loading)

	// После отписки уведомлений нет
	unsubscribe()
	c.SetError("boom")
	assert.Len(t, seen, 2)

	// Повторная отписка безопасна
	unsubscribe()
}

func TestContainer_SnapshotIsIsolated(t *testing.T) {
	c := NewContainer()
	c.SetTodos([]models.Todo{{ID: "1", Title: "original"}})

	s := c.GetState()
	s.Todos[0].Title = "mutated"

	assert.Equal(t, "original", c.GetState().Todos[0].Title)
}

func TestContainer_UpsertTodo(t *testing.T) {
	c := NewContainer()
	c.SetTodos([]models.Todo{{ID: "1", Title: "a"}})

	// Новая задача добавляется
	c.UpsertTodo(models.Todo{ID: "2", Title: "b"})
	require.Len(t, c.GetState().Todos, 2)

	// Существующая обновляется на месте
	c.UpsertTodo(models.Todo{ID: "1", Title: "a-updated"})
	s := c.GetState()
	require.Len(t, s.Todos, 2)
	assert.Equal(t, "a-updated", s.Todos[0].Title)
}

func TestContainer_RemoveTodo(t *testing.T) {
	c := NewContainer()
	c.SetTodos([]models.Todo{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	c.RemoveTodo("2")

	s := c.GetState()
	require.Len(t, s.Todos, 2)
	assert.Equal(t, "1", s.Todos[0].ID)
	assert.Equal(t, "3", s.Todos[1].ID)

	// Удаление несуществующего id ничего не меняет
	c.RemoveTodo("nope")
	assert.Len(t, c.GetState().Todos, 2)
}

func TestContainer_CompletedAndPending(t *testing.T) {
	c := NewContainer()
	c.SetTodos([]models.Todo{
		{ID: "1", IsCompleted: true},
		{ID: "2", IsCompleted: false},
		{ID: "3", IsCompleted: true},
	})

	completed := c.CompletedTodos()
	require.Len(t, completed, 2)
	assert.Equal(t, "1", completed[0].ID)

	pending := c.PendingTodos()
	require.Len(t, pending, 1)
	assert.Equal(t, "2", pending[0].ID)
}

func TestContainer_SetErrorClearsLoading(t *testing.T) {
	c := NewContainer()

	c.SetLoading(true)
	c.SetError("request failed")

	s := c.GetState()
	assert.False(t, s.Loading)
	assert.Equal(t, "request failed", s.Err)

	// Новая операция очищает прошлую ошибку
	c.SetLoading(true)
	assert.Empty(t, c.GetState().Err)
}
