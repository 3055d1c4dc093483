package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/taskkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken задает токен доступа для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateTodo создает новую задачу
func (c *Client) CreateTodo(ctx context.Context, req api.CreateTodoRequest) (*api.TodoResponse, error) {
	var resp api.TodoResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/todos", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create todo request failed: %w", err)
	}
	return &resp, nil
}

// ListTodos возвращает все задачи пользователя
func (c *Client) ListTodos(ctx context.Context) ([]api.TodoResponse, error) {
	var resp []api.TodoResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/todos", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list todos request failed: %w", err)
	}
	return resp, nil
}

// GetTodo возвращает задачу по id
func (c *Client) GetTodo(ctx context.Context, id string) (*api.TodoResponse, error) {
	var resp api.TodoResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/todos/"+id, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get todo request failed: %w", err)
	}
	return &resp, nil
}

// UpdateTodo частично обновляет задачу
func (c *Client) UpdateTodo(ctx context.Context, id string, req api.UpdateTodoRequest) (*api.TodoResponse, error) {
	var resp api.TodoResponse
	err := c.doRequest(ctx, http.MethodPut, "/api/v1/todos/"+id, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update todo request failed: %w", err)
	}
	return &resp, nil
}

// DeleteTodo удаляет задачу
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	err := c.doRequest(ctx, http.MethodDelete, "/api/v1/todos/"+id, nil, nil)
	if err != nil {
		return fmt.Errorf("delete todo request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ; 204 тела не имеет
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
