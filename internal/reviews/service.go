package reviews

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/reviewboard/internal/models"
	"github.com/iudanet/reviewboard/internal/store"
)

// Service exposes the review operations consumed by the HTTP layer
type Service struct {
	store       store.ContentStore
	engine      *Engine
	logger      *slog.Logger
	maxAttempts int
}

// NewService creates a review service with the given retry bound
func NewService(st store.ContentStore, logger *slog.Logger, maxAttempts int) *Service {
	return &Service{
		store:       st,
		engine:      NewEngine(st, logger),
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

// List returns the current review collection in insertion order
func (s *Service) List(ctx context.Context) ([]models.Review, error) {
	reviews, _, err := s.store.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Add creates a review and appends it to the collection.
// Отзыв строится один раз до цикла мутации: append — чистая transform,
// безопасная для повторного применения к более свежей базе.
func (s *Service) Add(ctx context.Context, text, avatar string, rating int) (models.Review, error) {
	review, err := models.NewReview(text, avatar, rating)
	if err != nil {
		return models.Review{}, err
	}

	result, err := s.engine.Mutate(ctx, func(reviews []models.Review) ([]models.Review, any) {
		return append(reviews, review), review
	}, s.maxAttempts)
	if err != nil {
		return models.Review{}, err
	}

	created, ok := result.(models.Review)
	if !ok {
		return models.Review{}, fmt.Errorf("unexpected mutation result type %T", result)
	}

	s.logger.Info("review added", "review_id", created.ID)
	return created, nil
}

// Clear replaces the collection with an empty one and reports how many
// reviews were removed.
func (s *Service) Clear(ctx context.Context) (int, error) {
	result, err := s.engine.Mutate(ctx, func(reviews []models.Review) ([]models.Review, any) {
		return []models.Review{}, len(reviews)
	}, s.maxAttempts)
	if err != nil {
		return 0, err
	}

	removed, ok := result.(int)
	if !ok {
		return 0, fmt.Errorf("unexpected mutation result type %T", result)
	}

	s.logger.Info("reviews cleared", "removed", removed)
	return removed, nil
}
