// Package api implements the HTTP client reviewctl talks to the server with.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/reviewboard/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс API клиента для команд reviewctl
type ClientAPI interface {
	// ListReviews returns the published review collection
	ListReviews(ctx context.Context) ([]api.Review, error)

	// AddReview publishes a new review
	AddReview(ctx context.Context, req api.AddReviewRequest) (*api.Review, error)

	// ClearReviews removes all reviews (requires the admin token)
	ClearReviews(ctx context.Context, adminToken string) (*api.ClearReviewsResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListReviews возвращает текущую коллекцию отзывов
func (c *Client) ListReviews(ctx context.Context) ([]api.Review, error) {
	var resp []api.Review
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/reviews", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("list reviews request failed: %w", err)
	}
	return resp, nil
}

// AddReview публикует новый отзыв
func (c *Client) AddReview(ctx context.Context, req api.AddReviewRequest) (*api.Review, error) {
	var resp api.Review
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/reviews", "", req, &resp); err != nil {
		return nil, fmt.Errorf("add review request failed: %w", err)
	}
	return &resp, nil
}

// ClearReviews удаляет все отзывы (требует админский токен)
func (c *Client) ClearReviews(ctx context.Context, adminToken string) (*api.ClearReviewsResponse, error) {
	var resp api.ClearReviewsResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/reviews", adminToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("clear reviews request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
