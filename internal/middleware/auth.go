package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pi2026/clubsite/backend/pkg/utils"
)

// TokenValidator reports whether a bearer token identifies a live session.
type TokenValidator interface {
	Validate(token string) bool
}

type contextKey int

const tokenContextKey contextKey = iota

// BearerAuth rejects requests without a valid session token and stores the
// token in the request context for downstream handlers.
func BearerAuth(sessions TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" || !sessions.Validate(token) {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from the Authorization header, empty when
// the header is missing or not a Bearer scheme.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// SessionToken returns the token BearerAuth stored on the context, empty
// when the request did not pass through BearerAuth.
func SessionToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
