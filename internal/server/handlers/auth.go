package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/taskkeeper/internal/crypto"
	"github.com/iudanet/taskkeeper/internal/models"
	"github.com/iudanet/taskkeeper/internal/server/apperr"
	"github.com/iudanet/taskkeeper/internal/server/storage"
	"github.com/iudanet/taskkeeper/internal/validation"
	"github.com/iudanet/taskkeeper/pkg/api"
)

// AuthHandler обрабатывает регистрацию и логин.
// Stateless: каждый запрос самодостаточен, сессий на сервере нет.
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	tokenConfig TokenConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokenConfig TokenConfig) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		tokenConfig: tokenConfig,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, r, apperr.Validation([]string{"invalid request body"}))
		return
	}

	// Проверка обязательных полей: по одному сообщению на каждое отсутствующее
	if messages := validation.RegisterFieldMessages(req.Username, req.Email, req.Password); len(messages) > 0 {
		h.logger.WarnContext(ctx, "register validation failed", slog.Any("messages", messages))
		sendError(h.logger, w, r, apperr.Validation(messages))
		return
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        validation.NormalizeEmail(req.Email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	// Гонку одновременных регистраций закрывает уникальный индекс в БД
	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "duplicate registration", slog.String("email", user.Email))
			sendError(h.logger, w, r, apperr.DuplicateUser())
			return
		}
		sendError(h.logger, w, r, err)
		return
	}

	token, err := GenerateToken(h.tokenConfig, user.ID)
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email))

	resp := api.RegisterResponse{
		User:  toUserResponse(user),
		Token: token,
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Все причины отказа (нет пользователя, аккаунт удален, неверный пароль)
// дают одинаковый 401: ответ не позволяет перечислять email
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, r, apperr.InvalidCredentials())
		return
	}

	user, err := h.userStorage.FindUser(ctx, storage.UserFilter{Email: validation.NormalizeEmail(req.Email)})
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found")
			sendError(h.logger, w, r, apperr.InvalidCredentials())
			return
		}
		sendError(h.logger, w, r, err)
		return
	}

	// Soft-deleted аккаунт на пути аутентификации равен отсутствующему
	if user.IsDeleted() {
		h.logger.WarnContext(ctx, "login failed: user is deleted", slog.String("user_id", user.ID))
		sendError(h.logger, w, r, apperr.InvalidCredentials())
		return
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("user_id", user.ID))
		sendError(h.logger, w, r, apperr.InvalidCredentials())
		return
	}

	token, err := GenerateToken(h.tokenConfig, user.ID)
	if err != nil {
		sendError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully", slog.String("user_id", user.ID))

	// Логин ничего не персистит и возвращает только токен
	sendJSON(h.logger, w, api.TokenResponse{Token: token}, http.StatusAccepted)
}

// toUserResponse собирает ответ без хеша пароля
func toUserResponse(user *models.User) api.UserResponse {
	return api.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
