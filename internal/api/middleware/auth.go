package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CourtGateway/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	tokenKey  contextKey = "token"
)

const (
	msgMissingToken  = "требуется заголовок Authorization с Bearer токеном"
	msgMissingUserID = "требуется заголовок X-User-ID"
)

// Auth извлекает Bearer токен и ID пользователя из заголовков запроса.
// Токен не проверяется на шлюзе: он передается внешнему API при каждом вызове,
// и только внешний API решает, валиден ли он
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, tokenKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный middleware Auth
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// TokenFromContext возвращает Bearer токен, положенный middleware Auth
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey).(string); ok {
		return v
	}
	return ""
}
