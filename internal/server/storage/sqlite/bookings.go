package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/reviewboard/internal/models"
)

// SaveBooking persists a new booking
func (s *Storage) SaveBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, name, phone, service, date, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		booking.ID,
		booking.Name,
		booking.Phone,
		booking.Service,
		booking.Date,
		booking.Comment,
		booking.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// ListBookings returns all bookings, newest first
func (s *Storage) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	query := `
		SELECT id, name, phone, service, date, comment, created_at
		FROM bookings
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*models.Booking{}
	for rows.Next() {
		var b models.Booking
		var createdAt int64

		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.Service, &b.Date, &b.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.CreatedAt = time.Unix(createdAt, 0).UTC()

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}
