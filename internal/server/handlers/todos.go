package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/apperr"
	"github.com/iudanet/taskkeeper/internal/server/storage"
	"github.com/iudanet/taskkeeper/internal/server/todos"
	"github.com/iudanet/taskkeeper/pkg/api"
)

// TodoHandler обрабатывает CRUD задач.
// До этих обработчиков доходят только аутентифицированные запросы:
// auth middleware кладет id пользователя в контекст, и каждый запрос
// получает scope, привязанный к этому владельцу.
type TodoHandler struct {
	logger      *slog.Logger
	todoStorage storage.TodoStorage
}

// NewTodoHandler создает новый handler для задач
func NewTodoHandler(logger *slog.Logger, todoStorage storage.TodoStorage) *TodoHandler {
	return &TodoHandler{
		logger:      logger,
		todoStorage: todoStorage,
	}
}

// scopeFromRequest строит scope владельца из контекста запроса
func (h *TodoHandler) scopeFromRequest(r *http.Request) (*todos.Scope, error) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		// Сюда попадать не должны: middleware - единственные ворота
		return nil, apperr.Unauthorized()
	}
	return todos.NewScope(h.todoStorage, userID), nil
}

// Create обрабатывает POST /api/v1/todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	scope, err := h.scopeFromRequest(r)
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	var req api.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to decode create todo request", slog.Any("error", err))
		sendError(h.logger, w, r, apperr.Validation([]string{"invalid request body"}))
		return
	}

	todo, err := scope.Create(r.Context(), todos.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		DueDate:     req.DueDate,
	})
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, toTodoResponse(todo), http.StatusCreated)
}

// List обрабатывает GET /api/v1/todos
// Задачи владельца по возрастанию due date, без даты - в конце
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := h.scopeFromRequest(r)
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	list, err := scope.List(r.Context())
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	resp := make([]api.TodoResponse, 0, len(list))
	for _, todo := range list {
		resp = append(resp, toTodoResponse(todo))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	scope, err := h.scopeFromRequest(r)
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	todo, err := scope.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, toTodoResponse(todo), http.StatusOK)
}

// Update обрабатывает PUT /api/v1/todos/{id}
// Меняются только переданные поля; явный isCompleted=false применяется
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	scope, err := h.scopeFromRequest(r)
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	var req api.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to decode update todo request", slog.Any("error", err))
		sendError(h.logger, w, r, apperr.Validation([]string{"invalid request body"}))
		return
	}

	todo, err := scope.Update(r.Context(), r.PathValue("id"), &models.TodoChanges{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		DueDate:     req.DueDate,
	})
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, toTodoResponse(todo), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/todos/{id}
// Слой доступа возвращает снимок удаленной записи, но REST контракт
// отвечает пустым 204
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, err := h.scopeFromRequest(r)
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	if _, err := scope.Delete(r.Context(), r.PathValue("id")); err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toTodoResponse собирает ответ без ссылки на владельца
func toTodoResponse(todo *models.Todo) api.TodoResponse {
	return api.TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		IsCompleted: todo.IsCompleted,
		DueDate:     todo.DueDate,
		CreatedAt:   todo.CreatedAt,
	}
}
