package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/todo-api/internal/auth"
	"github.com/BuzzLyutic/todo-api/internal/model"
)

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	validToken, err := tokens.Issue(model.User{ID: 7, FirstName: "Alice"})
	require.NoError(t, err)

	expiredTokens := auth.NewTokenService("test-secret", -time.Hour) // токен рождается уже просроченным
	expiredToken, err := expiredTokens.Issue(model.User{ID: 7})
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantCode    int
		wantMessage string
		wantNext    bool
	}{
		{
			name:        "no header",
			header:      "",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "No token provided",
		},
		{
			name:        "not a bearer scheme",
			header:      "Basic dXNlcjpwYXNz",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Malformed token",
		},
		{
			name:        "bearer without token",
			header:      "Bearer ",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Malformed token",
		},
		{
			name:        "garbage token",
			header:      "Bearer not-a-jwt",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Failed to authenticate token",
		},
		{
			name:        "expired token",
			header:      "Bearer " + expiredToken,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Failed to authenticate token",
		},
		{
			name:     "valid token",
			header:   "Bearer " + validToken,
			wantCode: http.StatusOK,
			wantNext: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				claims, ok := ClaimsFromContext(r.Context())
				require.True(t, ok, "claims should be in context")
				assert.Equal(t, int64(7), claims.UserID)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			RequireAuth(tokens)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantMessage != "" {
				var body map[string]string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.wantMessage, body["message"])
			}
		})
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := ClaimsFromContext(req.Context())
	assert.False(t, ok)
}
