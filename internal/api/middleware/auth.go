package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
)

// HeaderUserID заголовок с ID пользователя, проставляемый шлюзом
const HeaderUserID = "X-User-ID"

const msgMissingUserID = "identifiant utilisateur manquant ou invalide"

type contextKey string

const userIDKey contextKey = "userID"

// Auth кладет ID пользователя из заголовка в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID возвращает контекст с ID пользователя
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
