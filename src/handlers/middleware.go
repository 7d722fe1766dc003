// src/handlers/middleware.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/security/validation"
)

type contextKey string

const (
	requestIDContextKey contextKey = "requestID"
	sessionIDContextKey contextKey = "sessionID"

	SessionHeader     = "X-Session-ID"
	SessionCookieName = "session_id"
	RequestIDHeader   = "X-Request-ID"
)

// ContextualLoggerMiddleware creates a logger carrying a requestID for every request.
func ContextualLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		ctxLogger := logger.L.With(slog.String("requestID", requestID))

		ctx := logger.ToContext(r.Context(), ctxLogger)
		ctx = context.WithValue(ctx, requestIDContextKey, requestID)

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionMiddleware reads the session id from the X-Session-ID header, falling
// back to the session_id cookie. Ids that are not UUIDs are ignored and the
// request proceeds without a session.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger := logger.FromContext(r.Context())

		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			if c, err := r.Cookie(SessionCookieName); err == nil {
				sessionID = c.Value
			}
		}
		if sessionID == "" {
			next.ServeHTTP(w, r)
			return
		}
		if err := validation.ValidateSessionID(sessionID); err != nil {
			ctxLogger.Debug("SessionMiddleware: ignoring malformed session id", "path", r.URL.Path)
			next.ServeHTTP(w, r)
			return
		}

		enrichedLogger := ctxLogger.With(slog.String("sessionID", sessionID))
		ctx := logger.ToContext(r.Context(), enrichedLogger)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionIDFromContext returns the session id set by SessionMiddleware.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDContextKey).(string)
	return id, ok && id != ""
}

// GetRequestIDFromContext returns the id set by ContextualLoggerMiddleware.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
