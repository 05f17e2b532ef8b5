// Package telegram implements the notify.Notifier capability over the
// Telegram Bot API sendMessage method.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/reviewboard/internal/config"
	"github.com/iudanet/reviewboard/internal/notify"
)

// Client отправляет уведомления в один настроенный чат.
// Конфигурация резолвится на каждый вызов, как и у остальных клиентов.
type Client struct {
	httpClient *http.Client
	cfg        config.Provider
}

var _ notify.Notifier = (*Client)(nil)

// NewClient creates a Bot API client reading settings from cfg
func NewClient(cfg config.Provider) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// sendMessageRequest представляет тело POST /bot{token}/sendMessage
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Notify delivers one message to the configured chat
func (c *Client) Notify(ctx context.Context, text string) error {
	tg, err := config.LoadTelegram(c.cfg)
	if err != nil {
		return err
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID: tg.ChatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sendMessage request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/bot%s/sendMessage", tg.APIBaseURL, tg.BotToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendMessage request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendMessage failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
