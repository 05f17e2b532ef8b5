package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/reviewboard/pkg/api"
)

// sendJSON пишет JSON ответ с указанным статусом
func sendJSON(logger *slog.Logger, w http.ResponseWriter, payload any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// sendError пишет стандартный ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}
