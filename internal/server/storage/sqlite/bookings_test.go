package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/reviewboard/internal/models"
)

func newBooking(name string, createdAt time.Time) *models.Booking {
	return &models.Booking{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     "+79990001122",
		Service:   "haircut",
		Date:      "2026-09-01",
		Comment:   "after 18:00",
		CreatedAt: createdAt,
	}
}

func TestSaveBooking_AndList(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	booking := newBooking("Ivan", time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC))
	require.NoError(t, storage.SaveBooking(ctx, booking))

	bookings, err := storage.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	got := bookings[0]
	assert.Equal(t, booking.ID, got.ID)
	assert.Equal(t, "Ivan", got.Name)
	assert.Equal(t, "+79990001122", got.Phone)
	assert.Equal(t, "haircut", got.Service)
	assert.Equal(t, "2026-09-01", got.Date)
	assert.Equal(t, "after 18:00", got.Comment)
	assert.Equal(t, booking.CreatedAt, got.CreatedAt)
}

func TestListBookings_NewestFirst(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	older := newBooking("older", base)
	newer := newBooking("newer", base.Add(time.Hour))

	require.NoError(t, storage.SaveBooking(ctx, older))
	require.NoError(t, storage.SaveBooking(ctx, newer))

	bookings, err := storage.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "newer", bookings[0].Name)
	assert.Equal(t, "older", bookings[1].Name)
}

func TestSaveBooking_DuplicateID(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	booking := newBooking("Ivan", time.Now().UTC())
	require.NoError(t, storage.SaveBooking(ctx, booking))

	err := storage.SaveBooking(ctx, booking)
	assert.Error(t, err)
}

func TestListBookings_Empty(t *testing.T) {
	storage := newTestStorage(t)

	bookings, err := storage.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NotNil(t, bookings)
}
