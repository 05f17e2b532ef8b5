package reviews

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/reviewboard/internal/models"
	"github.com/iudanet/reviewboard/internal/store"
)

func TestService_List(t *testing.T) {
	mock := &store.ContentStoreMock{
		FetchFunc: func(ctx context.Context) ([]models.Review, string, error) {
			return []models.Review{review("a", "first"), review("b", "second")}, "sha", nil
		},
	}
	svc := NewService(mock, testLogger(), 5)

	reviews, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, reviews, 2)
	assert.Equal(t, "first", reviews[0].Text)
	assert.Equal(t, "second", reviews[1].Text)
}

func TestService_List_PropagatesError(t *testing.T) {
	mock := &store.ContentStoreMock{
		FetchFunc: func(ctx context.Context) ([]models.Review, string, error) {
			return nil, "", &store.StoreError{Op: "fetch", Status: 500}
		},
	}
	svc := NewService(mock, testLogger(), 5)

	_, err := svc.List(context.Background())

	var storeErr *store.StoreError
	require.True(t, errors.As(err, &storeErr))
}

func TestService_Add_EmptyStore(t *testing.T) {
	cas := &casStore{reviews: []models.Review{}}
	svc := NewService(cas, testLogger(), 5)

	created, err := svc.Add(context.Background(), "hello", "", 0)
	require.NoError(t, err)

	// Дефолты применены при создании
	assert.Equal(t, "hello", created.Text)
	assert.Equal(t, models.DefaultRating, created.Rating)
	assert.Equal(t, models.DefaultAvatar, created.Avatar)
	assert.NotEmpty(t, created.ID)

	stored, _, err := cas.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, created, stored[0])
}

func TestService_Add_AppendsToExisting(t *testing.T) {
	cas := &casStore{reviews: []models.Review{review("a", "earlier")}}
	svc := NewService(cas, testLogger(), 5)

	created, err := svc.Add(context.Background(), "later", "https://example.com/me.png", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, created.Rating)

	stored, _, err := cas.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "earlier", stored[0].Text)
	assert.Equal(t, "later", stored[1].Text)
}

func TestService_Add_InvalidInput(t *testing.T) {
	mock := &store.ContentStoreMock{}
	svc := NewService(mock, testLogger(), 5)

	_, err := svc.Add(context.Background(), "   ", "", 0)
	require.Error(t, err)

	// Невалидный отзыв отклоняется до обращения к хранилищу
	assert.Empty(t, mock.FetchCalls())
	assert.Empty(t, mock.WriteCalls())
}

func TestService_Add_PropagatesConflict(t *testing.T) {
	mock := &store.ContentStoreMock{
		FetchFunc: func(ctx context.Context) ([]models.Review, string, error) {
			return []models.Review{}, "sha", nil
		},
		WriteFunc: func(ctx context.Context, reviews []models.Review, token string) (string, error) {
			return "", &store.ConflictError{Path: "p", Status: 409}
		},
	}
	svc := NewService(mock, testLogger(), 2)

	_, err := svc.Add(context.Background(), "hello", "", 0)

	require.True(t, errors.Is(err, store.ErrConflict))
	assert.Len(t, mock.WriteCalls(), 2)
}

func TestService_Clear(t *testing.T) {
	cas := &casStore{reviews: []models.Review{
		review("a", "one"),
		review("b", "two"),
		review("c", "three"),
	}}
	svc := NewService(cas, testLogger(), 5)

	removed, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	stored, _, err := cas.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestService_Clear_EmptyStore(t *testing.T) {
	cas := &casStore{reviews: []models.Review{}}
	svc := NewService(cas, testLogger(), 5)

	removed, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
