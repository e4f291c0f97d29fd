package http

import (
	"context"

	"github.com/azkarapp/azkar-backend/internal/app/service"
	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession adds the caller's session context to the request context.
func WithSession(ctx context.Context, session model.SessionContext) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext extracts the caller's session context. Requests that
// never passed through the auth middleware count as anonymous.
func SessionFromContext(ctx context.Context) model.SessionContext {
	if session, ok := ctx.Value(sessionKey).(model.SessionContext); ok {
		return session
	}
	return model.AnonymousSession()
}

func authenticatedSession(claims *service.AccessTokenClaims) model.SessionContext {
	return model.AuthenticatedSession(claims.UserID)
}
