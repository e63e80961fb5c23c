package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a7jazili/hall-booking-service/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

// Auth требует валидный заголовок X-User-ID и кладет ID пользователя
// в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parseUserID(r)
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUserID(r.Context(), userID)))
	})
}

// OptionalAuth кладет ID пользователя в контекст, если заголовок передан,
// но пропускает запрос и без него. Используется для анонимных заявок.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := parseUserID(r); ok {
			r = r.WithContext(contextWithUserID(r.Context(), userID))
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func contextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func parseUserID(r *http.Request) (int64, bool) {
	header := r.Header.Get("X-User-ID")
	if header == "" {
		return 0, false
	}

	userID, err := strconv.ParseInt(header, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}

	return userID, true
}
