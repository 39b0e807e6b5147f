package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recordHandler serves the session's view of the shared collection.
type recordHandler struct {
	recordService    portssvc.RecordSvcFacade
	assistantService portssvc.AssistantSvcFacade
}

func newRecordHandler(rs portssvc.RecordSvcFacade, as portssvc.AssistantSvcFacade) *recordHandler {
	return &recordHandler{recordService: rs, assistantService: as}
}

// registerRecordRoutes registers routes related to records.
func registerRecordRoutes(rg *gin.RouterGroup, h *recordHandler, stream gin.HandlerFunc) {
	records := rg.Group("/records")
	{
		records.GET("", h.listRecords)
		records.GET("/stream", stream)
		records.GET("/stats", middleware.RequireRole(domain.RoleAdministrator), h.getStats)
		records.POST("/analysis", middleware.RequireRole(domain.RoleAdministrator), h.analyzeRecords)
		records.GET("/:recordID", h.getRecord)
		records.POST("/:recordID/template", h.renderTemplate)
		records.POST("/:recordID/draft", h.draftMessage)
		records.POST("/:recordID/whatsapp", h.buildWhatsAppLink)
	}
}

// listRecords godoc
// @Summary List records
// @Description Administrators get a preview of the first records; vendors get every record assigned to them.
// @Tags records
// @Produce json
// @Param limit query int false "Maximum records (administrators default to 50, vendors to all)"
// @Param q query string false "Free-text search"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list records"
// @Security BearerAuth
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records))
}

// getRecord godoc
// @Summary Get a record
// @Tags records
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /records/{recordID} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	record, err := h.recordService.GetRecord(c.Request.Context(), session, c.Param("recordID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// getStats godoc
// @Summary Collection statistics
// @Description Record count, distinct vendors and a best-effort amount total.
// @Tags records
// @Produce json
// @Success 200 {object} dto.RecordStatsResponse
// @Failure 403 {object} ErrorResponse "Administrators only"
// @Security BearerAuth
// @Router /records/stats [get]
func (h *recordHandler) getStats(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	stats, err := h.recordService.Stats(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordStatsResponse(stats))
}

// analyzeRecords godoc
// @Summary AI executive report
// @Description Sends the first 30 preview records to the text generator.
// @Tags records
// @Produce json
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} ErrorResponse "No data"
// @Failure 403 {object} ErrorResponse "Administrators only"
// @Failure 502 {object} ErrorResponse "Text generation failed"
// @Failure 503 {object} ErrorResponse "Text generation not configured"
// @Security BearerAuth
// @Router /records/analysis [post]
func (h *recordHandler) analyzeRecords(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	report, err := h.assistantService.AnalyzeRecords(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to analyze records")
		return
	}
	c.JSON(http.StatusOK, dto.AnalysisResponse{Report: report})
}
