package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/reviewboard/internal/models"
	"github.com/iudanet/reviewboard/internal/store"
	"github.com/iudanet/reviewboard/internal/validation"
	"github.com/iudanet/reviewboard/pkg/api"
)

//go:generate moq -out reviews_service_mock.go . ReviewsService

// ReviewsService defines the review operations the handler needs
type ReviewsService interface {
	// List returns the current review collection
	List(ctx context.Context) ([]models.Review, error)

	// Add appends a new review and returns the created item
	Add(ctx context.Context, text, avatar string, rating int) (models.Review, error)

	// Clear removes all reviews and returns how many were removed
	Clear(ctx context.Context) (int, error)
}

// ReviewsHandler обрабатывает запросы к коллекции отзывов
type ReviewsHandler struct {
	logger  *slog.Logger
	service ReviewsService
}

// NewReviewsHandler creates a new reviews handler
func NewReviewsHandler(logger *slog.Logger, service ReviewsService) *ReviewsHandler {
	return &ReviewsHandler{
		logger:  logger,
		service: service,
	}
}

// List обрабатывает GET /api/v1/reviews
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviews, err := h.service.List(ctx)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	resp := make([]api.Review, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, toAPIReview(review))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/reviews
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode review request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация до обращения к движку: невалидный текст не должен
	// стоить нам сетевых раундтрипов
	if err := validation.ValidateReviewText(req.Text); err != nil {
		h.logger.WarnContext(ctx, "invalid review text", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Rating != 0 {
		if err := validation.ValidateRating(req.Rating); err != nil {
			h.logger.WarnContext(ctx, "invalid review rating", slog.Any("error", err))
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	created, err := h.service.Add(ctx, req.Text, req.Avatar, req.Rating)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, toAPIReview(created), http.StatusCreated)
}

// Clear обрабатывает DELETE /api/v1/reviews (за админским credential)
func (h *ReviewsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	removed, err := h.service.Clear(ctx)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	resp := api.ClearReviewsResponse{
		Message: "reviews cleared",
		Removed: removed,
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// sendServiceError транслирует ошибки движка в HTTP статусы:
// исчерпанные ретраи конфликта — 409, ошибка конфигурации — 500 с
// сообщением для оператора, остальные ошибки хранилища — generic 500.
func (h *ReviewsHandler) sendServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var cfgErr *store.ConfigError

	switch {
	case errors.Is(err, store.ErrConflict):
		h.logger.WarnContext(ctx, "review mutation lost the retry race", slog.Any("error", err))
		sendError(h.logger, w, "concurrent update, please retry", http.StatusConflict)
	case errors.As(err, &cfgErr):
		h.logger.ErrorContext(ctx, "review store misconfigured", slog.Any("error", err))
		sendError(h.logger, w, cfgErr.Error(), http.StatusInternalServerError)
	default:
		h.logger.ErrorContext(ctx, "review operation failed", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
	}
}

// toAPIReview конвертирует модель в API формат
func toAPIReview(review models.Review) api.Review {
	return api.Review{
		ID:        review.ID,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
		Avatar:    review.Avatar,
		Rating:    review.Rating,
	}
}
