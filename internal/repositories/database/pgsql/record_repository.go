package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portsrepo "github.com/SscSPs/salesmaster_cloud/internal/core/ports/repositories"
	"github.com/SscSPs/salesmaster_cloud/internal/models"
	"github.com/SscSPs/salesmaster_cloud/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// recordsChannel is the NOTIFY channel raised by the sales_records trigger.
const recordsChannel = "sales_records_changed"

const selectRecordColumns = `SELECT record_id::text, fields, normalized_vendor, created_at FROM sales_records`

type PgxRecordRepository struct {
	BaseRepository
}

// newPgxRecordRepository creates a new repository for the shared record collection.
func newPgxRecordRepository(pool *pgxpool.Pool) *PgxRecordRepository {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

// ListRecords retrieves records in insertion order, all of them when limit <= 0.
func (r *PgxRecordRepository) ListRecords(ctx context.Context, limit int) ([]domain.Record, error) {
	query := selectRecordColumns + ` ORDER BY seq`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("failed to scan records: %w", err)
	}
	return mapping.ToDomainRecords(modelRecords), nil
}

// FindRecordByID retrieves a record by its identifier. An identifier that is
// not a UUID cannot match any record.
func (r *PgxRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	if _, err := uuid.Parse(recordID); err != nil {
		return nil, apperrors.ErrNotFound
	}
	rows, err := r.Pool.Query(ctx, selectRecordColumns+` WHERE record_id = $1::uuid`, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query record %s: %w", recordID, err)
	}
	modelRecord, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record by id %s: %w", recordID, err)
	}

	domainRecord := mapping.ToDomainRecord(modelRecord)
	return &domainRecord, nil
}

// ListRecordIDs retrieves the identifier of every stored record.
func (r *PgxRecordRepository) ListRecordIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT record_id::text FROM sales_records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query record ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan record ids: %w", err)
	}
	return ids, nil
}

// CountRecords returns the number of stored records.
func (r *PgxRecordRepository) CountRecords(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales_records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// DeleteRecordsBatch removes the given records in one transaction.
func (r *PgxRecordRepository) DeleteRecordsBatch(ctx context.Context, recordIDs []string) error {
	if len(recordIDs) == 0 {
		return nil
	}
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM sales_records WHERE record_id = ANY($1::uuid[])`, recordIDs); err != nil {
			return fmt.Errorf("failed to delete %d records: %w", len(recordIDs), err)
		}
		return nil
	})
}

// InsertRecordsBatch stores the given records in one transaction.
func (r *PgxRecordRepository) InsertRecordsBatch(ctx context.Context, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	query := `
		INSERT INTO sales_records (record_id, fields, normalized_vendor, created_at)
		VALUES ($1, $2, $3, $4);
	`
	return r.inTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, rec := range records {
			m := mapping.ToModelRecord(rec)
			batch.Queue(query, m.RecordID, m.Fields, m.NormalizedVendor, m.CreatedAt)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert %d records: %w", len(records), err)
		}
		return nil
	})
}

func scanRecord(row pgx.CollectableRow) (models.SalesRecord, error) {
	var rec models.SalesRecord
	err := row.Scan(
		&rec.RecordID,
		&rec.Fields,
		&rec.NormalizedVendor,
		&rec.CreatedAt,
	)
	return rec, err
}
