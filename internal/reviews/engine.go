// Package reviews implements the optimistic-concurrency mutation engine for
// the review collection and the service the HTTP layer talks to. Движок не
// держит состояния между вызовами: единственная точка сериализации — это
// compare-and-swap удаленного хранилища.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/reviewboard/internal/config"
	"github.com/iudanet/reviewboard/internal/models"
	"github.com/iudanet/reviewboard/internal/store"
)

// Transform maps the current collection to its replacement plus an operation
// result. A transform must be pure: при конфликте записи она вызывается
// заново с более свежим состоянием, поэтому побочные эффекты внутри
// transform выполнятся больше одного раза.
type Transform func(reviews []models.Review) (next []models.Review, result any)

// Engine runs read-apply-write cycles with bounded retry on version conflicts
type Engine struct {
	store  store.ContentStore
	logger *slog.Logger
}

// NewEngine creates a mutation engine over the given content store
func NewEngine(st store.ContentStore, logger *slog.Logger) *Engine {
	return &Engine{
		store:  st,
		logger: logger,
	}
}

// Mutate reads the current collection, applies transform and attempts a
// conditioned write. On a version conflict it re-reads fresh state and
// retries, up to maxAttempts cycles. Любая другая ошибка прерывает цикл
// сразу: повтор с теми же данными не поможет.
func (e *Engine) Mutate(ctx context.Context, transform Transform, maxAttempts int) (any, error) {
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultMaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		current, token, err := e.store.Fetch(ctx)
		if err != nil {
			return nil, err
		}

		// Защитная копия: transform не должна видеть внутренний срез движка
		snapshot := make([]models.Review, len(current))
		copy(snapshot, current)

		next, result := transform(snapshot)

		if _, err := e.store.Write(ctx, next, token); err != nil {
			if !errors.Is(err, store.ErrConflict) {
				return nil, err
			}
			if attempt == maxAttempts {
				e.logger.Warn("mutation attempts exhausted",
					"attempts", attempt)
				return nil, err
			}

			// Токен устарел: кто-то успел записать раньше нас.
			// Перечитываем свежее состояние, повтор со старыми данными бессмысленен.
			e.logger.Info("version conflict, re-reading document",
				"attempt", attempt,
				"max_attempts", maxAttempts)
			continue
		}

		if attempt > 1 {
			e.logger.Info("mutation succeeded after conflict retries",
				"attempts", attempt)
		}
		return result, nil
	}

	// Недостижимо при текущей логике цикла, но страхуемся от тихого выхода
	return nil, fmt.Errorf("mutation attempts exhausted without terminal error")
}
