package dto

import (
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
)

// LoginRequest starts a session. Secret is the shared administrator password
// for the admin role and the vendor's display name for the vendor role.
type LoginRequest struct {
	Role   domain.Role `json:"role" binding:"required,oneof=admin vendor"`
	Secret string      `json:"secret"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Session   SessionResponse `json:"session"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	SessionID  string      `json:"sessionID"`
	Role       domain.Role `json:"role"`
	VendorName string      `json:"vendorName,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ToSessionResponse converts a domain.Session to SessionResponse DTO
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:  s.SessionID,
		Role:       s.Role,
		VendorName: s.VendorName,
		CreatedAt:  s.CreatedAt,
	}
}
