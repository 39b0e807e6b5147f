package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, string, time.Time, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", time.Time{}, args.Error(3)
	}
	return args.Get(0).(*domain.Session), args.String(1), args.Get(2).(time.Time), args.Error(3)
}

func (m *MockSessionService) Logout(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock RecordService ---
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) ListRecords(ctx context.Context, session *domain.Session, params dto.ListRecordsParams) ([]domain.Record, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordService) GetRecord(ctx context.Context, session *domain.Session, recordID string) (*domain.Record, error) {
	args := m.Called(ctx, session, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordService) Stats(ctx context.Context, session *domain.Session) (*domain.RecordStats, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordStats), args.Error(1)
}

func (m *MockRecordService) Subscribe(ctx context.Context, session *domain.Session, search string) (<-chan []domain.Record, error) {
	args := m.Called(ctx, session, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []domain.Record), args.Error(1)
}

var _ portssvc.RecordSvcFacade = (*MockRecordService)(nil)

// --- Mock AssistantService ---
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) RenderTemplate(ctx context.Context, session *domain.Session, recordID string, req dto.TemplateMessageRequest) (*domain.Message, error) {
	args := m.Called(ctx, session, recordID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockAssistantService) DraftMessage(ctx context.Context, session *domain.Session, recordID string, req dto.DraftMessageRequest) (string, error) {
	args := m.Called(ctx, session, recordID, req)
	return args.String(0), args.Error(1)
}

func (m *MockAssistantService) BuildLink(ctx context.Context, session *domain.Session, recordID string, req dto.WhatsAppLinkRequest) (*domain.Message, error) {
	args := m.Called(ctx, session, recordID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockAssistantService) AnalyzeRecords(ctx context.Context, session *domain.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

var _ portssvc.AssistantSvcFacade = (*MockAssistantService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) StageUpload(ctx context.Context, session *domain.Session, fileName string, data []byte) (*domain.Upload, error) {
	args := m.Called(ctx, session, fileName, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockImportService) GetUpload(ctx context.Context, session *domain.Session, uploadID string) (*domain.Upload, error) {
	args := m.Called(ctx, session, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockImportService) DiscardUpload(ctx context.Context, session *domain.Session, uploadID string) error {
	args := m.Called(ctx, session, uploadID)
	return args.Error(0)
}

func (m *MockImportService) CommitUpload(ctx context.Context, session *domain.Session, uploadID string, req dto.CommitImportRequest) (*domain.ReplaceResult, error) {
	args := m.Called(ctx, session, uploadID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReplaceResult), args.Error(1)
}

func (m *MockImportService) ReplaceRecords(ctx context.Context, records []domain.Record, progress portssvc.ProgressFunc) (*domain.ReplaceResult, error) {
	args := m.Called(ctx, records, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReplaceResult), args.Error(1)
}

var _ portssvc.ImportSvcFacade = (*MockImportService)(nil)
