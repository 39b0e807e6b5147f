package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portsrepo "github.com/SscSPs/salesmaster_cloud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/utils"
)

// AdminPreviewLimit is the number of records an administrator sees when no
// limit is requested. Vendors always get their whole view by default.
const AdminPreviewLimit = 50

// recordService derives session views over the shared collection.
type recordService struct {
	BaseService
	recordRepo portsrepo.RecordRepositoryFacade
}

// NewRecordService creates a new record service.
func NewRecordService(repo portsrepo.RecordRepositoryFacade) portssvc.RecordSvcFacade {
	return &recordService{recordRepo: repo}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// ListRecords returns the administrator preview (the first limit records) or
// the vendor's full view; both are narrowed by the search term.
func (s *recordService) ListRecords(ctx context.Context, session *domain.Session, params dto.ListRecordsParams) ([]domain.Record, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}

	limit := 0
	if session.IsAdministrator() {
		limit = params.LimitOr(AdminPreviewLimit)
	}
	records, err := s.recordRepo.ListRecords(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records")
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	view := domain.DeriveView(records, session, params.Search)
	if vendorLimit := params.LimitOr(0); !session.IsAdministrator() && vendorLimit > 0 && len(view) > vendorLimit {
		view = view[:vendorLimit]
	}
	s.LogDebug(ctx, "Records listed", slog.Int("stored", len(records)), slog.Int("visible", len(view)))
	return view, nil
}

func (s *recordService) GetRecord(ctx context.Context, session *domain.Session, recordID string) (*domain.Record, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find record", slog.String("record_id", recordID))
		}
		return nil, err
	}
	// Records outside the vendor's view are reported as missing.
	if !session.CanSee(*record) {
		return nil, apperrors.ErrNotFound
	}
	return record, nil
}

func (s *recordService) Stats(ctx context.Context, session *domain.Session) (*domain.RecordStats, error) {
	if err := s.RequireAdministrator(ctx, session); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.ListRecords(ctx, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for stats")
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	vendors := make(map[string]struct{})
	amounts := make([]string, 0, len(records))
	for _, r := range records {
		if r.NormalizedVendor != "" {
			vendors[r.NormalizedVendor] = struct{}{}
		}
		amounts = append(amounts, r.Value(domain.FieldAmount))
	}
	total, unparsed := utils.SumAmounts(amounts)

	return &domain.RecordStats{
		Count:           len(records),
		Vendors:         len(vendors),
		TotalAmount:     total,
		UnparsedAmounts: unparsed,
	}, nil
}

// Subscribe forwards every store snapshot as the session's filtered view.
func (s *recordService) Subscribe(ctx context.Context, session *domain.Session, search string) (<-chan []domain.Record, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	snapshots, err := s.recordRepo.SubscribeRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to subscribe to records")
		return nil, fmt.Errorf("%w: failed to subscribe to records: %v", apperrors.ErrUnavailable, err)
	}

	views := make(chan []domain.Record, 1)
	go func() {
		defer close(views)
		for records := range snapshots {
			view := domain.DeriveView(records, session, search)
			select {
			case views <- view:
			case <-ctx.Done():
				return
			}
		}
	}()
	return views, nil
}
