package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictError_MatchesSentinel(t *testing.T) {
	err := &ConflictError{Path: "data/reviews.json", Status: 409}

	assert.True(t, errors.Is(err, ErrConflict))
	assert.Contains(t, err.Error(), "data/reviews.json")
	assert.Contains(t, err.Error(), "409")
}

func TestConflictError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("mutation failed: %w", &ConflictError{Path: "p", Status: 409})

	assert.True(t, errors.Is(err, ErrConflict))
}

func TestStoreError_DoesNotMatchConflict(t *testing.T) {
	err := &StoreError{Op: "write", Status: 500, Body: "boom"}

	assert.False(t, errors.Is(err, ErrConflict))
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "500")
}

func TestStoreError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &StoreError{Op: "fetch", Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Setting: "GITHUB_TOKEN", Reason: "is required"}

	assert.Equal(t, "config: GITHUB_TOKEN is required", err.Error())
	assert.False(t, errors.Is(err, ErrConflict))
}
