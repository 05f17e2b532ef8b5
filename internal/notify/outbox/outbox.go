// Package outbox wraps a notify.Notifier with a durable BoltDB queue:
// уведомление, которое не удалось доставить, сохраняется локально и
// передоставляется фоновым циклом, пока доставка не удастся.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/reviewboard/internal/notify"
)

var bucketPending = []byte("pending")

// DefaultFlushInterval период фоновой передоставки
const DefaultFlushInterval = time.Minute

// entry is the persisted form of an undelivered notification
type entry struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Attempts  int       `json:"attempts"`
}

// Outbox is a Notifier that falls back to a durable queue on delivery failure
type Outbox struct {
	db       *bbolt.DB
	delegate notify.Notifier
	logger   *slog.Logger
	stopC    chan struct{}
	doneC    chan struct{}
	interval time.Duration
	started  bool
}

var _ notify.Notifier = (*Outbox)(nil)

// New opens the outbox database and wraps delegate.
// dbPath is the path to the BoltDB file holding undelivered notifications.
func New(dbPath string, delegate notify.Notifier, interval time.Duration, logger *slog.Logger) (*Outbox, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open outbox db: %w", err)
	}

	// Инициализируем bucket заранее, чтобы Flush мог только читать
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketPending); err != nil {
			return fmt.Errorf("failed to create pending bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	if interval <= 0 {
		interval = DefaultFlushInterval
	}

	return &Outbox{
		db:       db,
		delegate: delegate,
		logger:   logger,
		stopC:    make(chan struct{}),
		doneC:    make(chan struct{}),
		interval: interval,
	}, nil
}

// Start launches the background redelivery loop
func (o *Outbox) Start() {
	o.started = true
	go o.loop()
}

// loop периодически передоставляет накопленные уведомления
func (o *Outbox) loop() {
	defer close(o.doneC)

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := o.Flush(context.Background()); err != nil {
				o.logger.Error("outbox flush failed", "error", err)
			}
		case <-o.stopC:
			return
		}
	}
}

// Close stops the redelivery loop and closes the database.
// Безопасен и без Start: ждать нечего, если цикл не запускался.
func (o *Outbox) Close() error {
	close(o.stopC)
	if o.started {
		<-o.doneC
	}
	return o.db.Close()
}

// Notify tries direct delivery first; on failure the notification is queued
// for redelivery and the caller sees success (доставка отложена, не потеряна).
func (o *Outbox) Notify(ctx context.Context, text string) error {
	err := o.delegate.Notify(ctx, text)
	if err == nil {
		return nil
	}

	o.logger.Warn("notification delivery failed, queueing for redelivery", "error", err)

	if qErr := o.Enqueue(ctx, text); qErr != nil {
		// Ни доставить, ни сохранить не удалось — отдаем исходную ошибку
		o.logger.Error("failed to queue notification", "error", qErr)
		return err
	}

	return nil
}

// Enqueue stores a notification for later delivery
func (o *Outbox) Enqueue(ctx context.Context, text string) error {
	e := entry{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal outbox entry: %w", err)
	}

	return o.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}
		if err := bucket.Put([]byte(e.ID), value); err != nil {
			return fmt.Errorf("failed to put outbox entry: %w", err)
		}
		return nil
	})
}

// Pending returns the number of queued notifications
func (o *Outbox) Pending() (int, error) {
	var count int
	err := o.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}
		count = bucket.Stats().KeyN
		return nil
	})
	return count, err
}

// Flush attempts to deliver every queued notification, removing the ones
// that succeed. Returns how many were delivered.
func (o *Outbox) Flush(ctx context.Context) (int, error) {
	// Снимаем копию очереди вне транзакции: доставка ходит по сети,
	// держать bolt-транзакцию открытой на это время нельзя
	var entries []entry
	err := o.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}
		return bucket.ForEach(func(k, v []byte) error {
			var e entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("failed to unmarshal outbox entry %s: %w", string(k), err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, e := range entries {
		if err := o.delegate.Notify(ctx, e.Text); err != nil {
			// Доставка все еще не работает: оставляем запись с увеличенным счетчиком
			e.Attempts++
			if uErr := o.update(e); uErr != nil {
				o.logger.Error("failed to update outbox entry", "id", e.ID, "error", uErr)
			}
			continue
		}

		if err := o.remove(e.ID); err != nil {
			return delivered, err
		}
		delivered++
	}

	if delivered > 0 {
		o.logger.Info("outbox notifications redelivered", "count", delivered)
	}
	return delivered, nil
}

// update перезаписывает запись очереди (например, счетчик попыток)
func (o *Outbox) update(e entry) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal outbox entry: %w", err)
	}

	return o.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}
		return bucket.Put([]byte(e.ID), value)
	})
}

// remove удаляет доставленную запись
func (o *Outbox) remove(id string) error {
	return o.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}
		return bucket.Delete([]byte(id))
	})
}
