package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// respondError maps a service error to its status code. Messages of server
// side failures are replaced by fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appErr := apperrors.FromError(err, fallback)

	if appErr.Code >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", appErr.Code))
	} else {
		logger.Warn("Request rejected", slog.String("error", err.Error()), slog.Int("status", appErr.Code))
	}
	c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message, Hint: appErr.Hint})
}

// currentSession returns the session placed by AuthMiddleware, answering 401 when absent.
func currentSession(c *gin.Context) (*domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return session, true
}
