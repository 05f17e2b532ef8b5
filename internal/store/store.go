package store

import (
	"context"

	"github.com/iudanet/reviewboard/internal/models"
)

//go:generate moq -out contentstore_mock.go . ContentStore

// ContentStore defines the versioned-blob capability the mutation engine
// runs against: a read that returns the current collection plus an opaque
// version token, and a write conditioned on that token (ETag-style
// compare-and-swap). Любой бэкенд с условной записью может заменить GitHub.
type ContentStore interface {
	// Fetch returns the current review collection and its version token.
	// Отсутствующий удаленный документ — не ошибка: возвращается пустая
	// коллекция и пустой токен (состояние первой записи).
	Fetch(ctx context.Context) ([]models.Review, string, error)

	// Write persists the collection conditioned on the version token
	// obtained from Fetch (empty token means "create, must not exist yet").
	// Returns the new version token.
	// Возвращает ConflictError, если токен устарел; StoreError для
	// остальных ошибок хранилища.
	Write(ctx context.Context, reviews []models.Review, token string) (string, error)
}
