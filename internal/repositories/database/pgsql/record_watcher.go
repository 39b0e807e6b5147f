package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// SubscribeRecords listens on the change channel with a dedicated connection and
// pushes the full collection once on subscribe and again after every change.
// Slow consumers only ever see the newest snapshot.
func (r *PgxRecordRepository) SubscribeRecords(ctx context.Context) (<-chan []domain.Record, error) {
	conn, err := r.Pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire listener connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{recordsChannel}.Sanitize()); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on %s: %w", recordsChannel, err)
	}

	// The listening connection is closed instead of going back to the pool.
	pgConn := conn.Hijack()

	snapshots := make(chan []domain.Record, 1)
	go func() {
		defer close(snapshots)
		defer pgConn.Close(context.WithoutCancel(ctx))

		load := func(ctx context.Context) ([]domain.Record, error) {
			return r.ListRecords(ctx, 0)
		}
		wait := func(ctx context.Context) error {
			_, err := pgConn.WaitForNotification(ctx)
			return err
		}
		watchRecords(ctx, load, wait, snapshots)
	}()

	return snapshots, nil
}

// watchRecords publishes a snapshot, then reloads and publishes again after
// every notification until ctx ends or either call fails.
func watchRecords(
	ctx context.Context,
	load func(context.Context) ([]domain.Record, error),
	wait func(context.Context) error,
	snapshots chan []domain.Record,
) {
	logger := middleware.GetLoggerFromCtx(ctx)
	for {
		records, err := load(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("Failed to load record snapshot", slog.String("error", err.Error()))
			}
			return
		}
		publishLatest(snapshots, records)

		if err := wait(ctx); err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				logger.Error("Record subscription interrupted", slog.String("error", err.Error()))
			}
			return
		}
	}
}

// publishLatest replaces an unread snapshot with the newer one.
func publishLatest(ch chan []domain.Record, records []domain.Record) {
	for {
		select {
		case ch <- records:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
