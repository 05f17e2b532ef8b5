package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/reviewboard/internal/models"
)

// SaveMessage persists a new contact-form message
func (s *Storage) SaveMessage(ctx context.Context, message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, contact, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		message.ID,
		message.Name,
		message.Contact,
		message.Message,
		message.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}

	return nil
}

// ListMessages returns all contact-form messages, newest first
func (s *Storage) ListMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, name, contact, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		var createdAt int64

		if err := rows.Scan(&m.ID, &m.Name, &m.Contact, &m.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		m.CreatedAt = time.Unix(createdAt, 0).UTC()

		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}

	return messages, nil
}
