package domain

import (
	"strings"
	"time"
)

// Role is the capability set chosen at login.
type Role string

const (
	RoleAdministrator Role = "admin"
	RoleVendor        Role = "vendor"
)

// Session is the explicit per-login context handed to handlers and services.
// It is created at login and destroyed at logout or process restart.
type Session struct {
	SessionID  string    `json:"sessionID"`
	Role       Role      `json:"role"`
	VendorName string    `json:"vendorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsAdministrator reports whether the session has unrestricted access.
func (s *Session) IsAdministrator() bool {
	return s != nil && s.Role == RoleAdministrator
}

// DisplayName is the name used when drafting messages on behalf of the session.
func (s *Session) DisplayName() string {
	if s.IsAdministrator() {
		return "Master"
	}
	return s.VendorName
}

// CanSee reports whether the record belongs to the session's view.
func (s *Session) CanSee(r Record) bool {
	if s == nil {
		return false
	}
	if s.IsAdministrator() {
		return true
	}
	return strings.Contains(r.NormalizedVendor, strings.ToLower(s.VendorName))
}
