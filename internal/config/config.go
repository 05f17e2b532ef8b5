// Package config resolves process configuration from environment variables
// behind an injectable Provider, so that every operation reads its settings
// at call time and tests can vary them per call without touching the
// process environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/iudanet/reviewboard/internal/store"
)

// DefaultMaxAttempts граница ретраев мутации по умолчанию
const DefaultMaxAttempts = 5

// maxAttemptsKeys распознаваемые настройки границы ретраев;
// выигрывает первая непустая
var maxAttemptsKeys = []string{
	"REVIEWS_MAX_ATTEMPTS",
	"GITHUB_MAX_ATTEMPTS",
	"MAX_ATTEMPTS",
}

// Provider abstracts configuration lookups
type Provider interface {
	// Lookup returns the raw value for key and whether it is set
	Lookup(key string) (string, bool)
}

// Env is the production Provider backed by the process environment
type Env struct{}

func (Env) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a Provider backed by a plain map, for tests
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// get возвращает значение настройки с удаленными пробелами ("" если не задана)
func get(p Provider, key string) string {
	v, _ := p.Lookup(key)
	return strings.TrimSpace(v)
}

// GitHub holds the settings of the remote reviews document:
// credential, repository identity, file path, branch and commit metadata.
type GitHub struct {
	Token          string // персональный токен с доступом к repo contents
	Owner          string // владелец репозитория
	Repo           string // имя репозитория
	Path           string // путь к JSON документу внутри репозитория
	Branch         string // ветка (ref) документа
	CommitMessage  string // человекочитаемое описание изменения
	CommitterName  string // опциональный коммиттер
	CommitterEmail string
	APIBaseURL     string // база contents API (переопределяется в тестах)
}

// LoadGitHub resolves the remote document settings.
// Required settings fail fast with a ConfigError before any network call.
func LoadGitHub(p Provider) (GitHub, error) {
	gh := GitHub{
		Token:          get(p, "GITHUB_TOKEN"),
		Owner:          get(p, "GITHUB_OWNER"),
		Repo:           get(p, "GITHUB_REPO"),
		Path:           get(p, "GITHUB_FILE_PATH"),
		Branch:         get(p, "GITHUB_BRANCH"),
		CommitMessage:  get(p, "GITHUB_COMMIT_MESSAGE"),
		CommitterName:  get(p, "GITHUB_COMMITTER_NAME"),
		CommitterEmail: get(p, "GITHUB_COMMITTER_EMAIL"),
		APIBaseURL:     get(p, "GITHUB_API_URL"),
	}

	if gh.Token == "" {
		return GitHub{}, &store.ConfigError{Setting: "GITHUB_TOKEN", Reason: "is required"}
	}
	if gh.Owner == "" {
		return GitHub{}, &store.ConfigError{Setting: "GITHUB_OWNER", Reason: "is required"}
	}
	if gh.Repo == "" {
		return GitHub{}, &store.ConfigError{Setting: "GITHUB_REPO", Reason: "is required"}
	}

	// Дефолты для необязательных настроек
	if gh.Path == "" {
		gh.Path = "data/reviews.json"
	}
	if gh.Branch == "" {
		gh.Branch = "main"
	}
	if gh.CommitMessage == "" {
		gh.CommitMessage = "Update reviews"
	}
	if gh.APIBaseURL == "" {
		gh.APIBaseURL = "https://api.github.com"
	}

	return gh, nil
}

// MaxAttempts returns the mutation retry bound.
// Проверяет распознаваемые настройки по порядку; нечисловые и
// неположительные значения откатываются к дефолту, а не отключают ретраи.
func MaxAttempts(p Provider) int {
	for _, key := range maxAttemptsKeys {
		raw := get(p, key)
		if raw == "" {
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return DefaultMaxAttempts
		}
		return n
	}

	return DefaultMaxAttempts
}

// Telegram holds the notification bot settings
type Telegram struct {
	BotToken   string // токен бота
	ChatID     string // идентификатор чата оператора
	APIBaseURL string // база Bot API (переопределяется в тестах)
}

// LoadTelegram resolves notification settings.
// Missing bot token or chat id fails with a ConfigError; callers treat it
// as "notifications disabled" at startup.
func LoadTelegram(p Provider) (Telegram, error) {
	tg := Telegram{
		BotToken:   get(p, "TELEGRAM_BOT_TOKEN"),
		ChatID:     get(p, "TELEGRAM_CHAT_ID"),
		APIBaseURL: get(p, "TELEGRAM_API_URL"),
	}

	if tg.BotToken == "" {
		return Telegram{}, &store.ConfigError{Setting: "TELEGRAM_BOT_TOKEN", Reason: "is required"}
	}
	if tg.ChatID == "" {
		return Telegram{}, &store.ConfigError{Setting: "TELEGRAM_CHAT_ID", Reason: "is required"}
	}

	if tg.APIBaseURL == "" {
		tg.APIBaseURL = "https://api.telegram.org"
	}

	return tg, nil
}

// AdminTokenHash returns the bcrypt hash of the static admin credential
func AdminTokenHash(p Provider) (string, error) {
	hash := get(p, "ADMIN_TOKEN_HASH")
	if hash == "" {
		return "", &store.ConfigError{Setting: "ADMIN_TOKEN_HASH", Reason: "is required"}
	}
	return hash, nil
}

// AllowedOrigins returns the CORS origin allowlist (default: any origin)
func AllowedOrigins(p Provider) []string {
	raw := get(p, "CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
