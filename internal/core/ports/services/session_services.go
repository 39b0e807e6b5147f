package services

import (
	"context"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
)

// SessionIssuerSvc creates and destroys sessions.
type SessionIssuerSvc interface {
	// Login checks the credentials for the requested role and starts a session.
	// It returns the session, its signed token and the token expiry.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, string, time.Time, error)

	// Logout destroys the session. Logging out twice is not an error.
	Logout(ctx context.Context, session *domain.Session) error
}

// SessionResolverSvc turns a bearer token back into a live session.
type SessionResolverSvc interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// SessionSvcFacade combines all session-related service interfaces
type SessionSvcFacade interface {
	SessionIssuerSvc
	SessionResolverSvc
}
