package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/taskkeeper/internal/server/apperr"
	"github.com/iudanet/taskkeeper/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError переводит ошибку в HTTP ответ.
// Доменные ошибки (*apperr.Error) несут свой статус и сообщения;
// все остальное - generic 500, исходная причина только логируется
// и никогда не попадает клиенту.
func sendError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		resp := api.ErrorResponse{
			Message:  appErr.Message,
			Messages: appErr.Messages,
		}
		sendJSON(logger, w, resp, appErr.Status)
		return
	}

	logger.ErrorContext(r.Context(), "internal error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))

	sendJSON(logger, w, api.ErrorResponse{Message: "internal server error"}, http.StatusInternalServerError)
}
