package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/platform/config"
	"github.com/SscSPs/salesmaster_cloud/internal/utils"
	"github.com/google/uuid"
)

// minVendorNameLength is exclusive: a vendor name needs more characters than this.
const minVendorNameLength = 1

type liveSession struct {
	session   *domain.Session
	expiresAt time.Time
}

// sessionService keeps live sessions in memory. Restarting the process ends them all.
type sessionService struct {
	BaseService
	adminPasswordHashes []string
	jwtSecret           string
	jwtIssuer           string
	jwtExpiry           time.Duration

	mu       sync.RWMutex
	sessions map[string]liveSession
}

// NewSessionService creates a new session service.
func NewSessionService(cfg *config.Config) portssvc.SessionSvcFacade {
	return &sessionService{
		adminPasswordHashes: cfg.AdminPasswordHashes,
		jwtSecret:           cfg.JWTSecret,
		jwtIssuer:           cfg.JWTIssuer,
		jwtExpiry:           cfg.JWTExpiryDuration,
		sessions:            make(map[string]liveSession),
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, string, time.Time, error) {
	session := &domain.Session{
		SessionID: uuid.NewString(),
		Role:      req.Role,
		CreatedAt: time.Now().UTC(),
	}

	switch req.Role {
	case domain.RoleAdministrator:
		if !utils.MatchesAdminSecret(req.Secret, s.adminPasswordHashes) {
			s.GetLogger(ctx).Warn("Administrator login rejected")
			return nil, "", time.Time{}, fmt.Errorf("%w: invalid administrator password", apperrors.ErrUnauthorized)
		}
	case domain.RoleVendor:
		name := strings.TrimSpace(req.Secret)
		if utf8.RuneCountInString(name) <= minVendorNameLength {
			return nil, "", time.Time{}, fmt.Errorf("%w: vendor name must be longer than one character", apperrors.ErrValidation)
		}
		session.VendorName = name
	default:
		return nil, "", time.Time{}, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	token, expiresAt, err := utils.GenerateSessionJWT(session, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return nil, "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.mu.Lock()
	s.pruneExpiredLocked(time.Now())
	s.sessions[session.SessionID] = liveSession{session: session, expiresAt: expiresAt}
	s.mu.Unlock()

	s.LogInfo(ctx, "Session started", slog.String("session_id", session.SessionID), slog.String("role", string(session.Role)))
	return session, token, expiresAt, nil
}

func (s *sessionService) Logout(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return nil
	}
	s.mu.Lock()
	delete(s.sessions, session.SessionID)
	s.mu.Unlock()

	s.LogInfo(ctx, "Session ended", slog.String("session_id", session.SessionID))
	return nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := utils.ParseSessionJWT(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	s.mu.RLock()
	live, ok := s.sessions[claims.Subject]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: session %s has ended", apperrors.ErrNotFound, claims.Subject)
	}
	return live.session, nil
}

func (s *sessionService) pruneExpiredLocked(now time.Time) {
	for id, live := range s.sessions {
		if now.After(live.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
