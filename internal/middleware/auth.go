package middleware

import (
	"context"
	"net/http"
	"strings"

	"cryptowallet/internal/auth"
	"cryptowallet/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionResolver maps a session id from a verified token onto a live
// session. Logged-out tokens resolve to nothing even while unexpired.
type SessionResolver interface {
	Get(id string) (*session.Session, bool)
}

func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

func Auth(secret string, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}
			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			s, ok := sessions.Get(claims.SessionID)
			if !ok {
				http.Error(w, "session expired", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
