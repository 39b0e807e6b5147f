package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, logout and session introspection.
type authHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newAuthHandler(ss portssvc.SessionSvcFacade) *authHandler {
	return &authHandler{sessionService: ss}
}

// registerAuthRoutes registers the public login route behind the rate limiter.
func registerAuthRoutes(r *gin.Engine, h *authHandler, loginLimit gin.HandlerFunc) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimit, h.login)
	}
}

// registerSessionRoutes registers routes that need a live session.
func registerSessionRoutes(rg *gin.RouterGroup, h *authHandler) {
	rg.POST("/auth/logout", h.logout)
	rg.GET("/session", h.getSession)
}

// login godoc
// @Summary Start a session
// @Description Administrators log in with the shared password, vendors with their display name.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Role and secret"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid input or vendor name too short"
// @Failure 401 {object} ErrorResponse "Invalid administrator password"
// @Failure 429 {object} ErrorResponse "Too many login attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, token, expiresAt, err := h.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to start session")
		return
	}

	logger.Info("Login successful", slog.String("session_id", session.SessionID), slog.String("role", string(session.Role)))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   dto.ToSessionResponse(session),
	})
}

// logout godoc
// @Summary End the session
// @Tags auth
// @Success 204 "Session ended"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.sessionService.Logout(c.Request.Context(), session); err != nil {
		respondError(c, err, "Failed to end session")
		return
	}
	c.Status(http.StatusNoContent)
}

// getSession godoc
// @Summary Describe the current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /session [get]
func (h *authHandler) getSession(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}
