package services

import (
	"context"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
)

// ProgressFunc receives the running inserted count after each insert batch.
type ProgressFunc func(inserted int)

// UploadStagerSvc parses files and keeps them for mapping review.
type UploadStagerSvc interface {
	// StageUpload parses the file and proposes a column mapping.
	StageUpload(ctx context.Context, session *domain.Session, fileName string, data []byte) (*domain.Upload, error)

	// GetUpload returns a staged upload with its current commit progress.
	GetUpload(ctx context.Context, session *domain.Session, uploadID string) (*domain.Upload, error)

	// DiscardUpload drops a staged upload without writing anything.
	DiscardUpload(ctx context.Context, session *domain.Session, uploadID string) error
}

// UploadCommitterSvc replaces the shared collection.
type UploadCommitterSvc interface {
	// CommitUpload builds records with the given mapping (the proposed one when
	// empty) and runs the bulk replace.
	CommitUpload(ctx context.Context, session *domain.Session, uploadID string, req dto.CommitImportRequest) (*domain.ReplaceResult, error)

	// ReplaceRecords runs the purge and insert phases for already built records.
	ReplaceRecords(ctx context.Context, records []domain.Record, progress ProgressFunc) (*domain.ReplaceResult, error)
}

// ImportSvcFacade combines all import-related service interfaces
type ImportSvcFacade interface {
	UploadStagerSvc
	UploadCommitterSvc
}
