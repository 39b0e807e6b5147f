package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// tokenQueryParam carries the token for websocket upgrades, where browsers
// cannot set an Authorization header.
const tokenQueryParam = "access_token"

// AuthMiddleware creates a Gin middleware handler that resolves the bearer
// token into a live session and stores it in the request context.
func AuthMiddleware(resolver portssvc.SessionResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, ok := bearerToken(c)
		if !ok {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		session, err := resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Invalid session token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrNotFound) {
				msg = "Session has ended"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		enrichedLogger := logger.With(
			slog.String("session_id", session.SessionID),
			slog.String("role", string(session.Role)),
		)
		ctx := WithSession(c.Request.Context(), session)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole aborts with 403 unless the session has the given role.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if session.Role != role {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not allowed", slog.String("required_role", string(role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token := c.Query(tokenQueryParam)
		return token, token != ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
