package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/reviewboard/internal/config"
	"github.com/iudanet/reviewboard/internal/notify"
	"github.com/iudanet/reviewboard/internal/notify/outbox"
	"github.com/iudanet/reviewboard/internal/notify/telegram"
	"github.com/iudanet/reviewboard/internal/reviews"
	"github.com/iudanet/reviewboard/internal/server"
	"github.com/iudanet/reviewboard/internal/server/storage/sqlite"
	"github.com/iudanet/reviewboard/internal/store/github"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "reviewboard.db", "Path to SQLite database (bookings, contact messages)")
	outboxPath := flag.String("outbox", "reviewboard-outbox.db", "Path to notification outbox database")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := newLogger()

	if err := run(logger, *addr, *dbPath, *outboxPath); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, outboxPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Env{}

	// Локальное хранилище заявок и сообщений
	db, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Уведомления: telegram, если настроен, иначе просто лог
	notifier, cleanup, err := buildNotifier(cfg, logger, outboxPath)
	if err != nil {
		return err
	}
	defer cleanup()

	// Отзывы живут в удаленном versioned-blob хранилище
	contentStore := github.NewClient(cfg)
	reviewsService := reviews.NewService(contentStore, logger, config.MaxAttempts(cfg))

	srv := server.New(logger, cfg, reviewsService, db, db, notifier, server.Options{
		Addr:    addr,
		Version: Version,
	})

	errC := make(chan error, 1)
	go func() {
		errC <- srv.Start()
	}()

	select {
	case err := <-errC:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// buildNotifier собирает цепочку уведомлений.
// Без настроенного telegram уведомления идут в лог; с telegram —
// через durable outbox, чтобы не терять их при сбоях доставки.
func buildNotifier(cfg config.Provider, logger *slog.Logger, outboxPath string) (notify.Notifier, func(), error) {
	if _, err := config.LoadTelegram(cfg); err != nil {
		logger.Warn("telegram notifications disabled", "reason", err)
		return notify.NewLogNotifier(logger), func() {}, nil
	}

	box, err := outbox.New(outboxPath, telegram.NewClient(cfg), outbox.DefaultFlushInterval, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open notification outbox: %w", err)
	}
	box.Start()

	cleanup := func() {
		if err := box.Close(); err != nil {
			logger.Error("failed to close notification outbox", "error", err)
		}
	}
	return box, cleanup, nil
}

// newLogger настраивает slog по переменной LOG_LEVEL
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func printVersion() {
	fmt.Printf("ReviewBoard Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
