package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/snakearena/server/internal/api/response"
	"github.com/snakearena/server/internal/model"
	"github.com/snakearena/server/internal/services/session"
)

type contextKey string

const accountContextKey contextKey = "account"

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

// Session creates middleware that resolves the request's session token into
// an account and stores it in the context. Anonymous requests pass through
// with no account; handlers that require auth check for one themselves,
// since "resource absent" and "not authenticated" answer differently here.
func Session(sessions *session.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, err := sessions.Resolve(r.Context(), ExtractToken(r))
			if err != nil {
				logger.Error("session resolution failed", slog.String("error", err.Error()))
				response.Error(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if account != nil {
				ctx := context.WithValue(r.Context(), accountContextKey, account)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ExtractToken extracts the session token from the request.
// The session cookie is the primary carrier; a Bearer token is accepted
// for non-browser clients such as the CLI.
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// GetAccount returns the authenticated account from the request context,
// or nil for an anonymous request
func GetAccount(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountContextKey).(*model.Account)
	return account
}
