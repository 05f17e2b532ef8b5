package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/reviewboard/internal/models"
	"github.com/iudanet/reviewboard/internal/notify"
	"github.com/iudanet/reviewboard/internal/server/storage"
	"github.com/iudanet/reviewboard/internal/validation"
	"github.com/iudanet/reviewboard/pkg/api"
)

// ContactHandler обрабатывает сообщения с формы обратной связи
type ContactHandler struct {
	logger   *slog.Logger
	storage  storage.MessageStorage
	notifier notify.Notifier
}

// NewContactHandler creates a new contact-form handler
func NewContactHandler(logger *slog.Logger, messageStorage storage.MessageStorage, notifier notify.Notifier) *ContactHandler {
	return &ContactHandler{
		logger:   logger,
		storage:  messageStorage,
		notifier: notifier,
	}
}

// Create обрабатывает POST /api/v1/contact
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode contact request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateContact(req.Name, req.Contact, req.Message); err != nil {
		h.logger.WarnContext(ctx, "invalid contact request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	message := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Contact:   req.Contact,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.storage.SaveMessage(ctx, message); err != nil {
		h.logger.ErrorContext(ctx, "failed to save contact message", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Уведомление оператора — best effort: сообщение уже сохранено,
	// провал доставки не должен ронять запрос
	text := fmt.Sprintf("New contact message from %s (%s):\n%s", message.Name, message.Contact, message.Message)
	if err := h.notifier.Notify(ctx, text); err != nil {
		h.logger.ErrorContext(ctx, "failed to notify about contact message", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "contact message received", slog.String("message_id", message.ID))

	resp := api.MessageResponse{
		ID:      message.ID,
		Message: "message received",
	}
	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// List обрабатывает GET /api/v1/messages (за админским credential)
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	messages, err := h.storage.ListMessages(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list contact messages", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.ContactMessage, 0, len(messages))
	for _, message := range messages {
		resp = append(resp, api.ContactMessage{
			ID:        message.ID,
			Name:      message.Name,
			Contact:   message.Contact,
			Message:   message.Message,
			CreatedAt: message.CreatedAt,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
