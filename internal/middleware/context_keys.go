package middleware

import (
	"context"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionCtxKey is the key used to store the authenticated session in the request context.
const sessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// GetSessionFromCtx retrieves the session placed by AuthMiddleware.
func GetSessionFromCtx(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*domain.Session)
	return session, ok && session != nil
}

// GetSessionFromContext retrieves the session from the Gin request.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	return GetSessionFromCtx(c.Request.Context())
}
