// Package github implements the store.ContentStore capability on top of the
// GitHub repository contents API. Документ с отзывами хранится одним JSON
// файлом; blob SHA файла играет роль version token для conditioned write.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/reviewboard/internal/config"
	"github.com/iudanet/reviewboard/internal/models"
	"github.com/iudanet/reviewboard/internal/store"
)

// Client обращается к contents API одного файла в одном репозитории.
// Конфигурация резолвится на каждый вызов (не кешируется), чтобы тесты
// могли менять ее между операциями.
type Client struct {
	httpClient *http.Client
	cfg        config.Provider
}

// Ensure Client satisfies the versioned-blob capability.
var _ store.ContentStore = (*Client)(nil)

// NewClient creates a contents API client reading settings from cfg
func NewClient(cfg config.Provider) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// contentResponse представляет ответ GET /repos/{owner}/{repo}/contents/{path}
type contentResponse struct {
	Content  string `json:"content"`  // base64 содержимое файла (с переносами строк)
	Encoding string `json:"encoding"` // всегда "base64" для файлов
	SHA      string `json:"sha"`      // blob SHA — наш version token
}

// committer представляет автора коммита в PUT запросе
type committer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// putRequest представляет тело PUT /repos/{owner}/{repo}/contents/{path}
type putRequest struct {
	Committer *committer `json:"committer,omitempty"`
	Message   string     `json:"message"`
	Content   string     `json:"content"` // base64 нового содержимого
	Branch    string     `json:"branch"`
	SHA       string     `json:"sha,omitempty"` // пустой при первой записи: файла еще нет
}

// putResponse представляет ответ на успешный PUT
type putResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

// Fetch reads the reviews document and its version token.
// 404 означает "документа еще нет" и возвращает пустую коллекцию без токена.
func (c *Client) Fetch(ctx context.Context) ([]models.Review, string, error) {
	gh, err := config.LoadGitHub(c.cfg)
	if err != nil {
		return nil, "", err
	}

	reqURL := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		gh.APIBaseURL, gh.Owner, gh.Repo, gh.Path, url.QueryEscape(gh.Branch))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", &store.StoreError{Op: "fetch", Err: err}
	}
	setHeaders(req, gh.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &store.StoreError{Op: "fetch", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		// Первая запись: коллекция пуста, version token отсутствует
		return []models.Review{}, "", nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &store.StoreError{Op: "fetch", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", &store.StoreError{Op: "fetch", Status: resp.StatusCode, Body: string(body)}
	}

	var content contentResponse
	if err := json.Unmarshal(body, &content); err != nil {
		return nil, "", &store.StoreError{Op: "fetch", Err: fmt.Errorf("decode contents response: %w", err)}
	}

	// GitHub вставляет переносы строк в base64 содержимое
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content.Content, "\n", ""))
	if err != nil {
		return nil, "", &store.StoreError{Op: "fetch", Err: fmt.Errorf("decode document content: %w", err)}
	}

	var reviews []models.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		// Поврежденный документ — не ретраится
		return nil, "", &store.StoreError{Op: "fetch", Err: fmt.Errorf("malformed reviews document: %w", err)}
	}

	return reviews, content.SHA, nil
}

// Write persists the collection conditioned on the version token.
// 409 от хранилища означает, что токен устарел — возвращается ConflictError.
func (c *Client) Write(ctx context.Context, reviews []models.Review, token string) (string, error) {
	gh, err := config.LoadGitHub(c.cfg)
	if err != nil {
		return "", err
	}

	payload, err := json.MarshalIndent(reviews, "", "  ")
	if err != nil {
		return "", &store.StoreError{Op: "write", Err: fmt.Errorf("marshal reviews document: %w", err)}
	}

	putBody := putRequest{
		Message: gh.CommitMessage,
		Content: base64.StdEncoding.EncodeToString(payload),
		Branch:  gh.Branch,
		SHA:     token,
	}
	if gh.CommitterName != "" && gh.CommitterEmail != "" {
		putBody.Committer = &committer{Name: gh.CommitterName, Email: gh.CommitterEmail}
	}

	jsonBody, err := json.Marshal(putBody)
	if err != nil {
		return "", &store.StoreError{Op: "write", Err: err}
	}

	reqURL := fmt.Sprintf("%s/repos/%s/%s/contents/%s", gh.APIBaseURL, gh.Owner, gh.Repo, gh.Path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", &store.StoreError{Op: "write", Err: err}
	}
	setHeaders(req, gh.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &store.StoreError{Op: "write", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &store.StoreError{Op: "write", Err: err}
	}

	if resp.StatusCode == http.StatusConflict {
		return "", &store.ConflictError{Path: gh.Path, Status: resp.StatusCode}
	}

	// Contents API сообщает об устаревшем sha и как 422: "... does not match ..."
	// при несовпадении токена, `"sha" wasn't supplied` при гонке первой записи
	// (файл успел появиться между нашим чтением и записью). Прочие 422 —
	// настоящие ошибки запроса, не конфликт.
	if resp.StatusCode == http.StatusUnprocessableEntity && isSHAMismatch(string(body)) {
		return "", &store.ConflictError{Path: gh.Path, Status: resp.StatusCode}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", &store.StoreError{Op: "write", Status: resp.StatusCode, Body: string(body)}
	}

	var result putResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &store.StoreError{Op: "write", Err: fmt.Errorf("decode write response: %w", err)}
	}

	return result.Content.SHA, nil
}

// isSHAMismatch распознает 422-варианты version conflict в теле ответа
func isSHAMismatch(body string) bool {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return false
	}

	return strings.Contains(payload.Message, "does not match") ||
		strings.Contains(payload.Message, `"sha" wasn't supplied`)
}

// setHeaders устанавливает общие заголовки contents API
func setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
}
