package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/core/ingest"
	portsrepo "github.com/SscSPs/salesmaster_cloud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/utils"
	"github.com/google/uuid"
)

var allowedImportExtensions = map[string]bool{
	"":      true,
	".csv":  true,
	".txt":  true,
	".tsv":  true,
	".xlsx": true,
}

// importService stages parsed uploads in memory and runs bulk replaces.
type importService struct {
	BaseService
	recordRepo portsrepo.RecordReplacer
	batchPause time.Duration
	uploadTTL  time.Duration
	analytics  *utils.PosthogClientWrapper

	mu      sync.Mutex
	uploads map[string]*domain.Upload
}

// ImportServiceOption is a functional option for configuring the import service
type ImportServiceOption func(*importService)

// WithBatchPause sets the pause between insert batches.
func WithBatchPause(d time.Duration) ImportServiceOption {
	return func(s *importService) {
		s.batchPause = d
	}
}

// WithUploadTTL sets how long a staged upload is kept without activity.
func WithUploadTTL(d time.Duration) ImportServiceOption {
	return func(s *importService) {
		s.uploadTTL = d
	}
}

// WithImportAnalytics reports committed imports to product analytics.
func WithImportAnalytics(client *utils.PosthogClientWrapper) ImportServiceOption {
	return func(s *importService) {
		s.analytics = client
	}
}

// NewImportService creates a new import service with the provided options
func NewImportService(repo portsrepo.RecordReplacer, options ...ImportServiceOption) portssvc.ImportSvcFacade {
	svc := &importService{
		recordRepo: repo,
		batchPause: 100 * time.Millisecond,
		uploadTTL:  30 * time.Minute,
		uploads:    make(map[string]*domain.Upload),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

func (s *importService) StageUpload(ctx context.Context, session *domain.Session, fileName string, data []byte) (*domain.Upload, error) {
	if err := s.RequireAdministrator(ctx, session); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedImportExtensions[ext] {
		return nil, fmt.Errorf("%w: unsupported file type %q, use .csv, .tsv, .txt or .xlsx", apperrors.ErrValidation, ext)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", apperrors.ErrValidation)
	}

	rows, err := ingest.ParseFile(fileName, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file has no rows", apperrors.ErrValidation)
	}

	header, dataRows := ingest.SplitHeader(rows)
	now := time.Now().UTC()
	upload := &domain.Upload{
		UploadID:        uuid.NewString(),
		FileName:        fileName,
		Header:          header,
		Rows:            dataRows,
		ProposedMapping: ingest.ProposeMapping(header),
		Status:          domain.UploadStaged,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.mu.Lock()
	s.pruneExpiredLocked(now)
	s.uploads[upload.UploadID] = upload
	s.mu.Unlock()

	s.LogInfo(ctx, "Upload staged",
		slog.String("upload_id", upload.UploadID),
		slog.String("file_name", fileName),
		slog.Int("columns", len(header)),
		slog.Int("rows", len(dataRows)))
	return snapshotUpload(upload), nil
}

func (s *importService) GetUpload(ctx context.Context, session *domain.Session, uploadID string) (*domain.Upload, error) {
	if err := s.RequireAdministrator(ctx, session); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	upload, err := s.findLocked(uploadID)
	if err != nil {
		return nil, err
	}
	return snapshotUpload(upload), nil
}

func (s *importService) DiscardUpload(ctx context.Context, session *domain.Session, uploadID string) error {
	if err := s.RequireAdministrator(ctx, session); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	upload, err := s.findLocked(uploadID)
	if err != nil {
		return err
	}
	if upload.Status == domain.UploadRunning {
		return fmt.Errorf("%w: upload %s is being committed", apperrors.ErrConflict, uploadID)
	}
	delete(s.uploads, uploadID)
	s.LogInfo(ctx, "Upload discarded", slog.String("upload_id", uploadID))
	return nil
}

func (s *importService) CommitUpload(ctx context.Context, session *domain.Session, uploadID string, req dto.CommitImportRequest) (*domain.ReplaceResult, error) {
	if err := s.RequireAdministrator(ctx, session); err != nil {
		return nil, err
	}

	s.mu.Lock()
	upload, err := s.findLocked(uploadID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	switch upload.Status {
	case domain.UploadRunning:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: upload %s is already being committed", apperrors.ErrConflict, uploadID)
	case domain.UploadDone:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: upload %s was already committed", apperrors.ErrConflict, uploadID)
	}
	mapping, err := resolveMapping(upload, req.Mapping)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	records := ingest.BuildRecords(upload.Rows, mapping)
	upload.Status = domain.UploadRunning
	upload.Deleted, upload.Inserted, upload.LastError = 0, 0, ""
	upload.UpdatedAt = time.Now().UTC()
	s.mu.Unlock()

	s.LogInfo(ctx, "Bulk replace started", slog.String("upload_id", uploadID), slog.Int("records", len(records)))

	// Once started the replace runs to completion or failure even if the client goes away.
	result, err := s.replace(context.WithoutCancel(ctx), records, func(inserted int) {
		s.mu.Lock()
		upload.Inserted = inserted
		upload.UpdatedAt = time.Now().UTC()
		s.mu.Unlock()
	})

	s.mu.Lock()
	upload.Deleted = result.Deleted
	upload.Inserted = result.Inserted
	upload.UpdatedAt = time.Now().UTC()
	if err != nil {
		// Rows stay staged so the administrator can retry from the mapping step.
		upload.Status = domain.UploadFailed
		upload.LastError = err.Error()
	} else {
		upload.Status = domain.UploadDone
		upload.Rows = nil
	}
	s.mu.Unlock()

	if err != nil {
		s.LogError(ctx, err, "Bulk replace failed", slog.String("upload_id", uploadID), slog.Int("inserted", result.Inserted))
		return result, err
	}

	s.LogInfo(ctx, "Bulk replace finished",
		slog.String("upload_id", uploadID),
		slog.Int("deleted", result.Deleted),
		slog.Int("inserted", result.Inserted))
	s.analytics.Enqueue(session.SessionID, "import_committed", map[string]any{
		"deleted":   result.Deleted,
		"inserted":  result.Inserted,
		"file_name": upload.FileName,
	})
	return result, nil
}

func (s *importService) ReplaceRecords(ctx context.Context, records []domain.Record, progress portssvc.ProgressFunc) (*domain.ReplaceResult, error) {
	return s.replace(ctx, records, progress)
}

func (s *importService) replace(ctx context.Context, records []domain.Record, progress portssvc.ProgressFunc) (*domain.ReplaceResult, error) {
	return BulkReplace(ctx, s.recordRepo, records, s.batchPause, progress)
}

// resolveMapping returns the proposed mapping or validates the override.
func resolveMapping(upload *domain.Upload, names []string) (domain.ColumnMapping, error) {
	mapping := upload.ProposedMapping.Clone()
	if len(names) == 0 {
		return mapping, nil
	}
	if len(names) != len(upload.Header) {
		return nil, fmt.Errorf("%w: mapping has %d entries but the file has %d columns", apperrors.ErrValidation, len(names), len(upload.Header))
	}
	for i, name := range names {
		field, ok := domain.ParseField(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q for column %d", apperrors.ErrValidation, name, i)
		}
		if err := mapping.Override(i, field); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	return mapping, nil
}

func (s *importService) findLocked(uploadID string) (*domain.Upload, error) {
	s.pruneExpiredLocked(time.Now().UTC())
	upload, ok := s.uploads[uploadID]
	if !ok {
		return nil, fmt.Errorf("%w: upload %s", apperrors.ErrNotFound, uploadID)
	}
	return upload, nil
}

func (s *importService) pruneExpiredLocked(now time.Time) {
	if s.uploadTTL <= 0 {
		return
	}
	for id, u := range s.uploads {
		if u.Status != domain.UploadRunning && now.Sub(u.UpdatedAt) > s.uploadTTL {
			delete(s.uploads, id)
		}
	}
}

// snapshotUpload copies the mutable counters so callers never race with a running commit.
func snapshotUpload(u *domain.Upload) *domain.Upload {
	cp := *u
	cp.ProposedMapping = u.ProposedMapping.Clone()
	return &cp
}
