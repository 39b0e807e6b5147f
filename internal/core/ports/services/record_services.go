package services

import (
	"context"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
)

// RecordReaderSvc reads the records visible to a session.
type RecordReaderSvc interface {
	// ListRecords returns the session's view, narrowed by the search term.
	ListRecords(ctx context.Context, session *domain.Session, params dto.ListRecordsParams) ([]domain.Record, error)

	// GetRecord returns one record when it is visible to the session.
	GetRecord(ctx context.Context, session *domain.Session, recordID string) (*domain.Record, error)

	// Stats summarizes the whole collection. Administrators only.
	Stats(ctx context.Context, session *domain.Session) (*domain.RecordStats, error)
}

// RecordWatcherSvc publishes the session's view on every store change.
type RecordWatcherSvc interface {
	// Subscribe emits the filtered view for every snapshot until ctx is done.
	Subscribe(ctx context.Context, session *domain.Session, search string) (<-chan []domain.Record, error)
}

// RecordSvcFacade combines all record-related service interfaces
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWatcherSvc
}
