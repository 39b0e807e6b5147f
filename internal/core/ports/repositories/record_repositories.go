package repositories

import (
	"context"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
)

// RecordReader defines read operations on the shared record collection.
type RecordReader interface {
	// ListRecords returns stored records in insertion order. A limit <= 0 returns all of them.
	ListRecords(ctx context.Context, limit int) ([]domain.Record, error)

	// FindRecordByID retrieves one record, apperrors.ErrNotFound when absent.
	FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error)

	// ListRecordIDs returns the identifiers of every stored record.
	ListRecordIDs(ctx context.Context) ([]string, error)

	// CountRecords returns the collection size.
	CountRecords(ctx context.Context) (int, error)
}

// RecordBatchWriter commits one batch per call. Each call is atomic on its own;
// a sequence of calls is not.
type RecordBatchWriter interface {
	// DeleteRecordsBatch removes the given records in one commit.
	DeleteRecordsBatch(ctx context.Context, recordIDs []string) error

	// InsertRecordsBatch stores the given records, which already carry fresh IDs, in one commit.
	InsertRecordsBatch(ctx context.Context, records []domain.Record) error
}

// RecordReplacer is what a bulk replace needs: the IDs to purge and batch writes.
type RecordReplacer interface {
	ListRecordIDs(ctx context.Context) ([]string, error)
	RecordBatchWriter
}

// RecordSubscriber pushes the full current collection on subscribe and again
// after every change, until ctx is done.
type RecordSubscriber interface {
	SubscribeRecords(ctx context.Context) (<-chan []domain.Record, error)
}

// RecordRepositoryFacade combines all record repository interfaces.
type RecordRepositoryFacade interface {
	RecordReader
	RecordBatchWriter
	RecordSubscriber
}
