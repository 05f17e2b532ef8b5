package validation

import (
	"fmt"
	"strings"
)

const (
	// MaxReviewTextLen максимальная длина текста отзыва
	MaxReviewTextLen = 2000

	// MaxNameLen максимальная длина имени в формах контакта и записи
	MaxNameLen = 128

	// MaxMessageLen максимальная длина сообщения с формы обратной связи
	MaxMessageLen = 4000

	// MinRating и MaxRating допустимый диапазон оценки отзыва
	MinRating = 1
	MaxRating = 5
)

// ValidateReviewText проверяет текст отзыва.
// Текст должен быть непустым после удаления пробелов и не длиннее MaxReviewTextLen.
func ValidateReviewText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("review text cannot be empty")
	}

	if len(trimmed) > MaxReviewTextLen {
		return fmt.Errorf("review text must not exceed %d characters", MaxReviewTextLen)
	}

	return nil
}

// ValidateRating проверяет, что оценка находится в допустимом диапазоне
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// ValidateContact проверяет поля формы обратной связи
func ValidateContact(name, contact, message string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	if strings.TrimSpace(contact) == "" {
		return fmt.Errorf("contact cannot be empty")
	}

	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message cannot be empty")
	}
	if len(message) > MaxMessageLen {
		return fmt.Errorf("message must not exceed %d characters", MaxMessageLen)
	}

	return nil
}

// ValidateBooking проверяет поля заявки на запись
func ValidateBooking(name, phone, date string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("phone cannot be empty")
	}

	if strings.TrimSpace(date) == "" {
		return fmt.Errorf("date cannot be empty")
	}

	return nil
}
