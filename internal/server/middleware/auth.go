package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/reviewboard/internal/config"
)

// AdminAuth создает middleware для проверки статического админского credential.
// Ожидается заголовок "Authorization: Bearer <token>"; токен сверяется с
// bcrypt-хешем из конфигурации. Конфигурация резолвится на каждый запрос.
func AdminAuth(logger *slog.Logger, cfg config.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hash, err := config.AdminTokenHash(cfg)
			if err != nil {
				logger.Error("admin credential not configured", "error", err)
				http.Error(w, "admin operations unavailable", http.StatusInternalServerError)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(parts[1])); err != nil {
				logger.Warn("Invalid admin token", "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			logger.Debug("Admin authenticated", "path", r.URL.Path)

			next.ServeHTTP(w, r)
		})
	}
}
