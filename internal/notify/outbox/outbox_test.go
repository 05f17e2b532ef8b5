package outbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/reviewboard/internal/notify"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okDelegate() *notify.NotifierMock {
	return &notify.NotifierMock{
		NotifyFunc: func(ctx context.Context, text string) error {
			return nil
		},
	}
}

func newTestOutbox(t *testing.T, delegate notify.Notifier) *Outbox {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "outbox.db")
	box, err := New(dbPath, delegate, time.Hour, testLogger())
	require.NoError(t, err)

	// Close ждет остановки фонового цикла
	box.Start()
	t.Cleanup(func() {
		require.NoError(t, box.Close())
	})

	return box
}

func TestNotify_DirectDelivery(t *testing.T) {
	delegate := &notify.NotifierMock{
		NotifyFunc: func(ctx context.Context, text string) error {
			return nil
		},
	}
	box := newTestOutbox(t, delegate)

	require.NoError(t, box.Notify(context.Background(), "new booking"))

	// Доставлено напрямую, очередь пуста
	require.Len(t, delegate.NotifyCalls(), 1)
	assert.Equal(t, "new booking", delegate.NotifyCalls()[0].Text)

	pending, err := box.Pending()
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}

func TestNotify_FailureQueues(t *testing.T) {
	delegate := &notify.NotifierMock{
		NotifyFunc: func(ctx context.Context, text string) error {
			return errors.New("network down")
		},
	}
	box := newTestOutbox(t, delegate)

	// Доставка не удалась, но вызывающий не видит ошибки: запись в очереди
	require.NoError(t, box.Notify(context.Background(), "new booking"))

	pending, err := box.Pending()
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestFlush_DeliversQueued(t *testing.T) {
	var failing bool
	delegate := &notify.NotifierMock{
		NotifyFunc: func(ctx context.Context, text string) error {
			if failing {
				return errors.New("network down")
			}
			return nil
		},
	}
	box := newTestOutbox(t, delegate)

	failing = true
	require.NoError(t, box.Notify(context.Background(), "first"))
	require.NoError(t, box.Notify(context.Background(), "second"))

	pending, err := box.Pending()
	require.NoError(t, err)
	require.Equal(t, 2, pending)

	// Сеть восстановилась: flush передоставляет все накопленное
	failing = false
	delivered, err := box.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, delivered)

	pending, err = box.Pending()
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}

func TestFlush_KeepsUndelivered(t *testing.T) {
	delegate := &notify.NotifierMock{
		NotifyFunc: func(ctx context.Context, text string) error {
			return errors.New("still down")
		},
	}
	box := newTestOutbox(t, delegate)

	require.NoError(t, box.Enqueue(context.Background(), "stuck"))

	delivered, err := box.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, delivered)

	pending, err := box.Pending()
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestClose_WithoutStart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "outbox.db")
	box, err := New(dbPath, okDelegate(), time.Hour, testLogger())
	require.NoError(t, err)

	// Close не должен зависать, даже если фоновый цикл не запускался
	done := make(chan error, 1)
	go func() {
		done <- box.Close()
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close blocked without a running redelivery loop")
	}
}

func TestOutbox_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "outbox.db")
	failing := &notify.NotifierMock{
		NotifyFunc: func(ctx context.Context, text string) error {
			return errors.New("network down")
		},
	}

	box, err := New(dbPath, failing, time.Hour, testLogger())
	require.NoError(t, err)
	box.Start()

	require.NoError(t, box.Notify(context.Background(), "durable"))
	require.NoError(t, box.Close())

	// После перезапуска запись на месте и доставляется
	working := &notify.NotifierMock{
		NotifyFunc: func(ctx context.Context, text string) error {
			return nil
		},
	}
	box, err = New(dbPath, working, time.Hour, testLogger())
	require.NoError(t, err)
	box.Start()
	defer func() {
		require.NoError(t, box.Close())
	}()

	pending, err := box.Pending()
	require.NoError(t, err)
	require.Equal(t, 1, pending)

	delivered, err := box.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
	require.Len(t, working.NotifyCalls(), 1)
	assert.Equal(t, "durable", working.NotifyCalls()[0].Text)
}
