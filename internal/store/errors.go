package store

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for version-token conflicts on conditioned writes.
// Engine retries only errors matching this sentinel.
var ErrConflict = errors.New("version conflict")

// ConfigError indicates a missing or invalid required setting.
// Операторская ошибка: не ретраится, возвращается вызывающему как есть.
type ConfigError struct {
	Setting string // имя настройки (например, "GITHUB_TOKEN")
	Reason  string // причина (например, "is required")
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Setting, e.Reason)
}

// ConflictError indicates that the supplied version token no longer matches
// the store's current token. Retryable: matches ErrConflict via errors.Is.
type ConflictError struct {
	Path   string // путь документа в удаленном хранилище
	Status int    // HTTP статус, которым хранилище сообщило о конфликте
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict writing %q (status %d)", e.Path, e.Status)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// StoreError is any other store failure: transport errors, unexpected
// statuses, malformed remote payloads. Non-retryable.
type StoreError struct {
	Err    error  // транспортная ошибка или ошибка разбора, если была
	Op     string // операция ("fetch" или "write")
	Body   string // тело ответа хранилища для диагностики
	Status int    // HTTP статус ответа (0, если до ответа не дошло)
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s: unexpected status %d: %s", e.Op, e.Status, e.Body)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
