package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/BuzzLyutic/todo-api/internal/auth"
	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

type contextKey struct{}

var claimsKey = contextKey{}

// ClaimsFromContext достает проверенные claims, положенные туда RequireAuth
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// RequireAuth - заслонка перед всеми /api/todos: без валидного Bearer-токена
// до БД запрос не доходит
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Error(w, r, http.StatusUnauthorized, "No token provided")
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				respond.Error(w, r, http.StatusUnauthorized, "Malformed token")
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "Failed to authenticate token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
