package storage

import (
	"context"

	"github.com/iudanet/reviewboard/internal/models"
)

//go:generate moq -out bookings_mock.go . BookingStorage
//go:generate moq -out messages_mock.go . MessageStorage

// BookingStorage defines interface for booking persistence
type BookingStorage interface {
	// SaveBooking persists a new booking
	SaveBooking(ctx context.Context, booking *models.Booking) error

	// ListBookings returns all bookings, newest first
	ListBookings(ctx context.Context) ([]*models.Booking, error)
}

// MessageStorage defines interface for contact-form message persistence
type MessageStorage interface {
	// SaveMessage persists a new contact message
	SaveMessage(ctx context.Context, message *models.ContactMessage) error

	// ListMessages returns all contact messages, newest first
	ListMessages(ctx context.Context) ([]*models.ContactMessage, error)
}
