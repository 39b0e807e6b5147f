package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bindOptionalJSON binds a JSON body, treating an empty body as all defaults.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// renderTemplate godoc
// @Summary Render the fixed message template
// @Description Fills {Client}, {Amount} and the other field placeholders plus {Video}, and returns the wa.me link.
// @Tags messages
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param message body dto.TemplateMessageRequest false "Template and video link overrides"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 422 {object} ErrorResponse "Record has no phone number"
// @Security BearerAuth
// @Router /records/{recordID}/template [post]
func (h *recordHandler) renderTemplate(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var req dto.TemplateMessageRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	msg, err := h.assistantService.RenderTemplate(c.Request.Context(), session, c.Param("recordID"), req)
	if err != nil {
		respondError(c, err, "Failed to render message")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Text: msg.Text, Link: msg.Link})
}

// draftMessage godoc
// @Summary Draft a message with AI
// @Description Returns editable text only; use the whatsapp endpoint to build the link.
// @Tags messages
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param message body dto.DraftMessageRequest false "Video link override"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 502 {object} ErrorResponse "Text generation failed"
// @Failure 503 {object} ErrorResponse "Text generation not configured"
// @Security BearerAuth
// @Router /records/{recordID}/draft [post]
func (h *recordHandler) draftMessage(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var req dto.DraftMessageRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	text, err := h.assistantService.DraftMessage(c.Request.Context(), session, c.Param("recordID"), req)
	if err != nil {
		respondError(c, err, "Failed to draft message")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Text: text})
}

// buildWhatsAppLink godoc
// @Summary Build a wa.me link
// @Tags messages
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param message body dto.WhatsAppLinkRequest true "Message text"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Missing text"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 422 {object} ErrorResponse "Record has no phone number"
// @Security BearerAuth
// @Router /records/{recordID}/whatsapp [post]
func (h *recordHandler) buildWhatsAppLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var req dto.WhatsAppLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BuildWhatsAppLink", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	msg, err := h.assistantService.BuildLink(c.Request.Context(), session, c.Param("recordID"), req)
	if err != nil {
		respondError(c, err, "Failed to build link")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Text: msg.Text, Link: msg.Link})
}
