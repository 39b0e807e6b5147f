package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portsrepo "github.com/SscSPs/salesmaster_cloud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/google/uuid"
)

const (
	deleteBatchSize = 400
	insertBatchSize = 300
)

// BulkReplace purges the collection and inserts records, one committed batch
// at a time. A failing batch stops the run; batches committed before it stay
// committed and the returned result counts them. pause is slept between
// insert batches.
func BulkReplace(ctx context.Context, repo portsrepo.RecordReplacer, records []domain.Record, pause time.Duration, progress portssvc.ProgressFunc) (*domain.ReplaceResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	result := &domain.ReplaceResult{}

	ids, err := repo.ListRecordIDs(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list existing records: %w", err)
	}
	for _, chunk := range chunkStrings(ids, deleteBatchSize) {
		if err := repo.DeleteRecordsBatch(ctx, chunk); err != nil {
			logger.Error("Delete batch failed", slog.String("error", err.Error()), slog.Int("deleted", result.Deleted))
			return result, fmt.Errorf("failed to delete existing records after %d: %w", result.Deleted, err)
		}
		result.Deleted += len(chunk)
		result.DeleteBatches++
	}
	logger.Info("Existing records purged", slog.Int("deleted", result.Deleted), slog.Int("batches", result.DeleteBatches))

	now := time.Now().UTC()
	for start := 0; start < len(records); start += insertBatchSize {
		if start > 0 && pause > 0 {
			if err := sleepCtx(ctx, pause); err != nil {
				return result, err
			}
		}
		end := min(start+insertBatchSize, len(records))

		batch := make([]domain.Record, 0, end-start)
		for _, rec := range records[start:end] {
			rec.RecordID = uuid.NewString()
			rec.CreatedAt = now
			batch = append(batch, rec)
		}
		if err := repo.InsertRecordsBatch(ctx, batch); err != nil {
			logger.Error("Insert batch failed", slog.String("error", err.Error()), slog.Int("inserted", result.Inserted))
			return result, fmt.Errorf("failed to insert records after %d: %w", result.Inserted, err)
		}
		result.Inserted += len(batch)
		result.InsertBatches++
		if progress != nil {
			progress(result.Inserted)
		}
	}
	return result, nil
}

func chunkStrings(items []string, size int) [][]string {
	var chunks [][]string
	for len(items) > 0 {
		n := min(size, len(items))
		chunks = append(chunks, items[:n])
		items = items[n:]
	}
	return chunks
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
