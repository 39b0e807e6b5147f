package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAdministrator rejects sessions that are not administrators.
func (s *BaseService) RequireAdministrator(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return fmt.Errorf("%w: no session", apperrors.ErrUnauthorized)
	}
	if !session.IsAdministrator() {
		s.LogDebug(ctx, "Administrator action refused", slog.String("role", string(session.Role)))
		return fmt.Errorf("%w: administrator session required", apperrors.ErrForbidden)
	}
	return nil
}

// RequireSession rejects calls without a session.
func (s *BaseService) RequireSession(session *domain.Session) error {
	if session == nil {
		return fmt.Errorf("%w: no session", apperrors.ErrUnauthorized)
	}
	return nil
}
