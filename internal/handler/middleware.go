package handler

import (
	"context"
	"net/http"
	"strings"

	"ponyexpress/backend/internal/pkg/auth"
	"ponyexpress/backend/internal/pkg/httputils"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the authenticated caller's id placed in the request context
// by the auth middleware.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}

// Middleware wraps handlers that require an authenticated caller.
type Middleware struct {
	tokens *auth.TokenManager
}

func NewMiddleware(tokens *auth.TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireUser validates the bearer token and stores the caller's id in the
// request context. Unauthenticated requests get a 401.
func (m *Middleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			httputils.ResponseError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			httputils.ResponseError(w, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		claims, err := m.tokens.ValidateToken(tokenStr)
		if err != nil {
			httputils.ResponseError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next(w, r.WithContext(ctx))
	}
}
