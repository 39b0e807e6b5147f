package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/gin-gonic/gin"
)

const uploadFormField = "file"

// importHandler drives the upload, mapping review and commit steps.
type importHandler struct {
	importService  portssvc.ImportSvcFacade
	maxUploadBytes int64
}

func newImportHandler(is portssvc.ImportSvcFacade, maxUploadBytes int64) *importHandler {
	return &importHandler{importService: is, maxUploadBytes: maxUploadBytes}
}

// registerImportRoutes registers administrator routes related to imports.
func registerImportRoutes(rg *gin.RouterGroup, h *importHandler) {
	imports := rg.Group("/imports", middleware.RequireRole(domain.RoleAdministrator))
	{
		imports.POST("", h.stageUpload)
		imports.GET("/fields", h.listFields)
		imports.GET("/:uploadID", h.getUpload)
		imports.POST("/:uploadID/commit", h.commitUpload)
		imports.DELETE("/:uploadID", h.discardUpload)
	}
}

// stageUpload godoc
// @Summary Upload a spreadsheet
// @Description Parses a CSV, TSV or XLSX file and proposes a column mapping. Nothing is written yet.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV, TSV or XLSX file"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} ErrorResponse "Missing, empty or unsupported file"
// @Failure 403 {object} ErrorResponse "Administrators only"
// @Failure 413 {object} ErrorResponse "File too large"
// @Security BearerAuth
// @Router /imports [post]
func (h *importHandler) stageUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := currentSession(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+1<<10)
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
			return
		}
		logger.Warn("Upload without file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file is required in the 'file' form field"})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err, "Failed to read upload")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		respondError(c, err, "Failed to read upload")
		return
	}

	upload, err := h.importService.StageUpload(c.Request.Context(), session, fileHeader.Filename, data)
	if err != nil {
		respondError(c, err, "Failed to stage upload")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUploadResponse(upload))
}

// listFields godoc
// @Summary Mapping targets
// @Tags imports
// @Produce json
// @Success 200 {object} dto.FieldsResponse
// @Security BearerAuth
// @Router /imports/fields [get]
func (h *importHandler) listFields(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FieldsResponse{Fields: domain.Fields})
}

// getUpload godoc
// @Summary Staged upload status
// @Description Includes the running inserted count while a commit is in progress.
// @Tags imports
// @Produce json
// @Param uploadID path string true "Upload ID"
// @Success 200 {object} dto.UploadResponse
// @Failure 404 {object} ErrorResponse "Upload not found or expired"
// @Security BearerAuth
// @Router /imports/{uploadID} [get]
func (h *importHandler) getUpload(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	upload, err := h.importService.GetUpload(c.Request.Context(), session, c.Param("uploadID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve upload")
		return
	}
	c.JSON(http.StatusOK, dto.ToUploadResponse(upload))
}

// commitUpload godoc
// @Summary Replace the collection
// @Description Deletes every stored record and inserts the staged rows with the given mapping (the proposed one when omitted).
// @Tags imports
// @Accept json
// @Produce json
// @Param uploadID path string true "Upload ID"
// @Param mapping body dto.CommitImportRequest false "Final column mapping"
// @Success 200 {object} dto.CommitImportResponse
// @Failure 400 {object} ErrorResponse "Invalid mapping"
// @Failure 404 {object} ErrorResponse "Upload not found or expired"
// @Failure 409 {object} ErrorResponse "Upload already committed or running"
// @Failure 500 {object} ErrorResponse "Replace failed; the upload stays staged for retry"
// @Security BearerAuth
// @Router /imports/{uploadID}/commit [post]
func (h *importHandler) commitUpload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := currentSession(c)
	if !ok {
		return
	}
	var req dto.CommitImportRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	uploadID := c.Param("uploadID")
	result, err := h.importService.CommitUpload(c.Request.Context(), session, uploadID, req)
	if err != nil {
		if result != nil {
			// The replace ran and failed part way; the administrator sees the underlying error.
			logger.Error("Import failed", slog.String("upload_id", uploadID), slog.Int("inserted", result.Inserted), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: err.Error(),
				Hint:  "the upload is still staged, fix the problem and commit again",
			})
			return
		}
		respondError(c, err, "Failed to commit upload")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommitImportResponse(uploadID, result))
}

// discardUpload godoc
// @Summary Discard a staged upload
// @Tags imports
// @Param uploadID path string true "Upload ID"
// @Success 204 "Discarded"
// @Failure 404 {object} ErrorResponse "Upload not found or expired"
// @Security BearerAuth
// @Router /imports/{uploadID} [delete]
func (h *importHandler) discardUpload(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.importService.DiscardUpload(c.Request.Context(), session, c.Param("uploadID")); err != nil {
		respondError(c, err, "Failed to discard upload")
		return
	}
	c.Status(http.StatusNoContent)
}
