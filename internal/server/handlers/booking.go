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

// BookingHandler обрабатывает заявки на запись
type BookingHandler struct {
	logger   *slog.Logger
	storage  storage.BookingStorage
	notifier notify.Notifier
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(logger *slog.Logger, bookingStorage storage.BookingStorage, notifier notify.Notifier) *BookingHandler {
	return &BookingHandler{
		logger:   logger,
		storage:  bookingStorage,
		notifier: notifier,
	}
}

// Create обрабатывает POST /api/v1/booking
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode booking request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateBooking(req.Name, req.Phone, req.Date); err != nil {
		h.logger.WarnContext(ctx, "invalid booking request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Phone:     req.Phone,
		Service:   req.Service,
		Date:      req.Date,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.storage.SaveBooking(ctx, booking); err != nil {
		h.logger.ErrorContext(ctx, "failed to save booking", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	text := fmt.Sprintf("New booking from %s (%s): %s on %s", booking.Name, booking.Phone, booking.Service, booking.Date)
	if err := h.notifier.Notify(ctx, text); err != nil {
		h.logger.ErrorContext(ctx, "failed to notify about booking", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "booking received", slog.String("booking_id", booking.ID))

	resp := api.MessageResponse{
		ID:      booking.ID,
		Message: "booking received",
	}
	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// List обрабатывает GET /api/v1/bookings (за админским credential)
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookings, err := h.storage.ListBookings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list bookings", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Booking, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, api.Booking{
			ID:        booking.ID,
			Name:      booking.Name,
			Phone:     booking.Phone,
			Service:   booking.Service,
			Date:      booking.Date,
			Comment:   booking.Comment,
			CreatedAt: booking.CreatedAt,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
