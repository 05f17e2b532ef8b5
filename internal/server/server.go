// Package server wires handlers and middleware into the HTTP server.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/reviewboard/internal/config"
	"github.com/iudanet/reviewboard/internal/notify"
	"github.com/iudanet/reviewboard/internal/server/handlers"
	"github.com/iudanet/reviewboard/internal/server/middleware"
	"github.com/iudanet/reviewboard/internal/server/storage"
)

// Options настройки HTTP сервера
type Options struct {
	Addr    string // адрес прослушивания (например, ":8080")
	Version string // версия приложения для health check

	// RateLimit запросов на IP в окно RateWindow для мутирующих эндпоинтов
	RateLimit  int
	RateWindow time.Duration
}

// Server represents the HTTP server with its background dependencies
type Server struct {
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
}

// New собирает сервер: маршруты, middleware цепочку и rate limiter
func New(
	logger *slog.Logger,
	cfg config.Provider,
	reviewsService handlers.ReviewsService,
	bookingStorage storage.BookingStorage,
	messageStorage storage.MessageStorage,
	notifier notify.Notifier,
	opts Options,
) *Server {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.RateWindow <= 0 {
		opts.RateWindow = time.Minute
	}

	reviewsHandler := handlers.NewReviewsHandler(logger, reviewsService)
	contactHandler := handlers.NewContactHandler(logger, messageStorage, notifier)
	bookingHandler := handlers.NewBookingHandler(logger, bookingStorage, notifier)
	healthHandler := handlers.NewHealthHandler(logger, opts.Version)

	limiter := middleware.NewRateLimiter(opts.RateLimit, opts.RateWindow, logger)
	limit := limiter.Middleware()
	adminAuth := middleware.AdminAuth(logger, cfg)

	mux := http.NewServeMux()
	mux.Handle("GET /api/v1/reviews", http.HandlerFunc(reviewsHandler.List))
	mux.Handle("POST /api/v1/reviews", limit(http.HandlerFunc(reviewsHandler.Create)))
	mux.Handle("DELETE /api/v1/reviews", adminAuth(http.HandlerFunc(reviewsHandler.Clear)))
	mux.Handle("POST /api/v1/contact", limit(http.HandlerFunc(contactHandler.Create)))
	mux.Handle("POST /api/v1/booking", limit(http.HandlerFunc(bookingHandler.Create)))
	mux.Handle("GET /api/v1/bookings", adminAuth(http.HandlerFunc(bookingHandler.List)))
	mux.Handle("GET /api/v1/messages", adminAuth(http.HandlerFunc(contactHandler.List)))
	mux.Handle("GET /api/v1/health", http.HandlerFunc(healthHandler.Health))

	// CORS стоит до mux: preflight OPTIONS не должен доходить до роутинга
	var handler http.Handler = mux
	handler = middleware.CORS(cfg)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.Recovery(logger)(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		limiter: limiter,
		logger:  logger,
	}
}

// Start begins serving; blocks until the listener fails or Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server and its rate limiter
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the root handler for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
