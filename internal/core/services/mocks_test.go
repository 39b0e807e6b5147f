package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock RecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) ListRecords(ctx context.Context, limit int) ([]domain.Record, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) ListRecordIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecordRepository) CountRecords(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordRepository) DeleteRecordsBatch(ctx context.Context, recordIDs []string) error {
	args := m.Called(ctx, recordIDs)
	return args.Error(0)
}

func (m *MockRecordRepository) InsertRecordsBatch(ctx context.Context, records []domain.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockRecordRepository) SubscribeRecords(ctx context.Context) (<-chan []domain.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []domain.Record), args.Error(1)
}

// --- Mock TextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// recordingWriter keeps the batch sizes it was asked to write.
type recordingWriter struct {
	mu          sync.Mutex
	ids         []string
	deleteSizes []int
	insertSizes []int
	inserted    []domain.Record
	insertedAt  []time.Time
	onInsert    func(batch int)
	failInsert  int // 1-based insert batch that fails, 0 for none
	failErr     error
}

func (w *recordingWriter) ListRecordIDs(ctx context.Context) ([]string, error) {
	return w.ids, nil
}

func (w *recordingWriter) DeleteRecordsBatch(ctx context.Context, recordIDs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.deleteSizes = append(w.deleteSizes, len(recordIDs))
	return nil
}

func (w *recordingWriter) InsertRecordsBatch(ctx context.Context, records []domain.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.failInsert == len(w.insertSizes)+1 {
		return w.failErr
	}
	w.insertSizes = append(w.insertSizes, len(records))
	w.inserted = append(w.inserted, records...)
	w.insertedAt = append(w.insertedAt, time.Now())
	if w.onInsert != nil {
		w.onInsert(len(w.insertSizes))
	}
	return nil
}

func sampleRecords(n int) []domain.Record {
	out := make([]domain.Record, n)
	for i := range out {
		r := domain.NewRecord()
		r.Set(domain.FieldClient, "client")
		out[i] = r
	}
	return out
}

func idList(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "id"
	}
	return out
}

func adminSession() *domain.Session {
	return &domain.Session{SessionID: "admin-session", Role: domain.RoleAdministrator}
}

func vendorSession(name string) *domain.Session {
	return &domain.Session{SessionID: "vendor-session", Role: domain.RoleVendor, VendorName: name}
}

func record(id, client, vendor, amount, phone string) domain.Record {
	r := domain.NewRecord()
	r.RecordID = id
	r.Set(domain.FieldClient, client)
	r.Set(domain.FieldVendor, vendor)
	r.Set(domain.FieldAmount, amount)
	r.Set(domain.FieldPhone, phone)
	return r
}
