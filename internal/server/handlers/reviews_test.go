package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/reviewboard/internal/models"
	"github.com/iudanet/reviewboard/internal/store"
	"github.com/iudanet/reviewboard/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReviewsHandler_List(t *testing.T) {
	service := &ReviewsServiceMock{
		ListFunc: func(ctx context.Context) ([]models.Review, error) {
			return []models.Review{
				{
					ID:        "id-1",
					Text:      "Great",
					Avatar:    models.DefaultAvatar,
					Rating:    5,
					CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	handler := NewReviewsHandler(testLogger(), service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp []api.Review
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "id-1", resp[0].ID)
	assert.Equal(t, "Great", resp[0].Text)
	assert.Equal(t, 5, resp[0].Rating)
}

func TestReviewsHandler_List_EmptyIsArray(t *testing.T) {
	service := &ReviewsServiceMock{
		ListFunc: func(ctx context.Context) ([]models.Review, error) {
			return []models.Review{}, nil
		},
	}
	handler := NewReviewsHandler(testLogger(), service)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil))

	require.Equal(t, http.StatusOK, w.Code)
	// Пустая коллекция сериализуется как [], не null
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestReviewsHandler_Create(t *testing.T) {
	service := &ReviewsServiceMock{
		AddFunc: func(ctx context.Context, text, avatar string, rating int) (models.Review, error) {
			return models.Review{
				ID:        "new-id",
				Text:      text,
				Avatar:    models.DefaultAvatar,
				Rating:    models.DefaultRating,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	handler := NewReviewsHandler(testLogger(), service)

	body, err := json.Marshal(api.AddReviewRequest{Text: "Great service"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.Review
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "new-id", resp.ID)
	assert.Equal(t, "Great service", resp.Text)
	assert.Equal(t, models.DefaultRating, resp.Rating)

	require.Len(t, service.AddCalls(), 1)
	assert.Equal(t, "Great service", service.AddCalls()[0].Text)
}

func TestReviewsHandler_Create_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{not json`},
		{name: "empty text", body: `{"text":"   "}`},
		{name: "rating too high", body: `{"text":"ok","rating":6}`},
		{name: "negative rating", body: `{"text":"ok","rating":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &ReviewsServiceMock{}
			handler := NewReviewsHandler(testLogger(), service)

			w := httptest.NewRecorder()
			handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusBadRequest, w.Code)
			// Невалидный запрос не доходит до сервиса
			assert.Empty(t, service.AddCalls())
		})
	}
}

func TestReviewsHandler_Create_Conflict(t *testing.T) {
	service := &ReviewsServiceMock{
		AddFunc: func(ctx context.Context, text, avatar string, rating int) (models.Review, error) {
			return models.Review{}, &store.ConflictError{Path: "data/reviews.json", Status: 409}
		},
	}
	handler := NewReviewsHandler(testLogger(), service)

	w := httptest.NewRecorder()
	handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(`{"text":"ok"}`)))

	require.Equal(t, http.StatusConflict, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "concurrent update, please retry", resp.Message)
}

func TestReviewsHandler_Create_ConfigError(t *testing.T) {
	service := &ReviewsServiceMock{
		AddFunc: func(ctx context.Context, text, avatar string, rating int) (models.Review, error) {
			return models.Review{}, &store.ConfigError{Setting: "GITHUB_TOKEN", Reason: "is required"}
		},
	}
	handler := NewReviewsHandler(testLogger(), service)

	w := httptest.NewRecorder()
	handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(`{"text":"ok"}`)))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	// Ошибка конфигурации видна оператору как есть
	assert.Contains(t, resp.Message, "GITHUB_TOKEN")
}

func TestReviewsHandler_Create_StoreError(t *testing.T) {
	service := &ReviewsServiceMock{
		AddFunc: func(ctx context.Context, text, avatar string, rating int) (models.Review, error) {
			return models.Review{}, &store.StoreError{Op: "write", Status: 502, Body: "bad gateway"}
		},
	}
	handler := NewReviewsHandler(testLogger(), service)

	w := httptest.NewRecorder()
	handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(`{"text":"ok"}`)))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	// Детали хранилища наружу не утекают
	assert.Equal(t, "internal server error", resp.Message)
}

func TestReviewsHandler_Clear(t *testing.T) {
	service := &ReviewsServiceMock{
		ClearFunc: func(ctx context.Context) (int, error) {
			return 3, nil
		},
	}
	handler := NewReviewsHandler(testLogger(), service)

	w := httptest.NewRecorder()
	handler.Clear(w, httptest.NewRequest(http.MethodDelete, "/api/v1/reviews", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ClearReviewsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 3, resp.Removed)
	assert.Equal(t, "reviews cleared", resp.Message)
}

func TestReviewsHandler_Clear_Conflict(t *testing.T) {
	service := &ReviewsServiceMock{
		ClearFunc: func(ctx context.Context) (int, error) {
			return 0, &store.ConflictError{Path: "data/reviews.json", Status: 409}
		},
	}
	handler := NewReviewsHandler(testLogger(), service)

	w := httptest.NewRecorder()
	handler.Clear(w, httptest.NewRequest(http.MethodDelete, "/api/v1/reviews", nil))

	require.Equal(t, http.StatusConflict, w.Code)
}
