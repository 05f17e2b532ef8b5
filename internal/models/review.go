package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/reviewboard/internal/validation"
)

const (
	// DefaultRating оценка по умолчанию, когда клиент не передал rating (или передал 0)
	DefaultRating = 5

	// DefaultAvatar placeholder аватар, когда клиент не передал свой URI
	DefaultAvatar = "https://www.gravatar.com/avatar/?d=mp"
)

// Review представляет один отзыв пользователя.
// Отзыв неизменяем после создания: коллекция мутируется только целиком,
// через замену всего документа в удаленном хранилище.
type Review struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время создания отзыва (UTC)
	ID        string    `json:"id"`         // ID уникальный идентификатор отзыва (UUID)
	Text      string    `json:"text"`       // Text текст отзыва (непустой после trim)
	Avatar    string    `json:"avatar"`     // Avatar URI аватара автора
	Rating    int       `json:"rating"`     // Rating оценка 1..5
}

// NewReview создает новый отзыв с дефолтными значениями.
// Текст триммится и валидируется; пустой avatar заменяется placeholder'ом,
// нулевой rating — значением по умолчанию.
func NewReview(text, avatar string, rating int) (Review, error) {
	text = strings.TrimSpace(text)
	if err := validation.ValidateReviewText(text); err != nil {
		return Review{}, err
	}

	if avatar == "" {
		avatar = DefaultAvatar
	}
	if rating == 0 {
		rating = DefaultRating
	}
	if err := validation.ValidateRating(rating); err != nil {
		return Review{}, err
	}

	return Review{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Avatar:    avatar,
		Rating:    rating,
	}, nil
}
