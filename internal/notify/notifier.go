// Package notify defines the boundary to operator notifications.
// Семантика доставки за этой границей не специфицируется: хендлеры
// передают текст уведомления и не зависят от конкретного транспорта.
package notify

import (
	"context"
	"log/slog"
)

//go:generate moq -out notifier_mock.go . Notifier

// Notifier delivers an operator-facing notification about a site event
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// LogNotifier is the fallback Notifier used when no transport is configured:
// уведомление просто попадает в лог сервера.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier that writes notifications to the log
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, text string) error {
	n.logger.InfoContext(ctx, "notification", "text", text)
	return nil
}
