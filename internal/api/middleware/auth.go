package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/REBALL-BookingService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const headerUserID = "X-User-ID"

// Auth извлекает ID пользователя из заголовка X-User-ID и кладет его
// в контекст запроса. Сессию устанавливает вышестоящий слой - здесь
// заголовку доверяем, но требуем его наличия и корректности.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
