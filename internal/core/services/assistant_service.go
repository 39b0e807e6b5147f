package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/salesmaster_cloud/internal/apperrors"
	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
	"github.com/SscSPs/salesmaster_cloud/internal/utils"
)

const (
	analysisSampleMax = 30
	videoPlaceholder  = "{Video}"
)

// placeholderAliases lets templates written with the spreadsheet's Spanish
// column names keep working.
var placeholderAliases = map[domain.Field][]string{
	domain.FieldClient: {"Cliente"},
	domain.FieldVendor: {"Vendedor"},
	domain.FieldAmount: {"Monto"},
	domain.FieldStatus: {"Estatus"},
	domain.FieldPhone:  {"Telefono", "Teléfono"},
	domain.FieldDate:   {"Fecha"},
	domain.FieldNote:   {"Notas", "Nota"},
}

// MessageDefaults are the fallbacks used when a request leaves a value empty.
type MessageDefaults struct {
	Template         string
	VideoLink        string
	PhoneCountryCode string
}

type assistantService struct {
	BaseService
	records   portssvc.RecordReaderSvc
	generator gateways.TextGenerator
	defaults  MessageDefaults
	analytics *utils.PosthogClientWrapper
}

// AssistantServiceOption is a functional option for configuring the assistant service
type AssistantServiceOption func(*assistantService)

// WithTextGenerator enables AI drafting and analysis.
func WithTextGenerator(generator gateways.TextGenerator) AssistantServiceOption {
	return func(s *assistantService) {
		s.generator = generator
	}
}

// WithMessageAnalytics reports built deep links to product analytics.
func WithMessageAnalytics(client *utils.PosthogClientWrapper) AssistantServiceOption {
	return func(s *assistantService) {
		s.analytics = client
	}
}

// NewAssistantService creates a new assistant service with the provided options
func NewAssistantService(records portssvc.RecordReaderSvc, defaults MessageDefaults, options ...AssistantServiceOption) portssvc.AssistantSvcFacade {
	svc := &assistantService{
		records:  records,
		defaults: defaults,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AssistantSvcFacade = (*assistantService)(nil)

func (s *assistantService) RenderTemplate(ctx context.Context, session *domain.Session, recordID string, req dto.TemplateMessageRequest) (*domain.Message, error) {
	record, err := s.records.GetRecord(ctx, session, recordID)
	if err != nil {
		return nil, err
	}

	text := RenderMessageTemplate(
		firstNonEmpty(req.Template, s.defaults.Template),
		*record,
		firstNonEmpty(req.VideoLink, s.defaults.VideoLink),
	)
	return s.withLink(ctx, session, record, text)
}

func (s *assistantService) DraftMessage(ctx context.Context, session *domain.Session, recordID string, req dto.DraftMessageRequest) (string, error) {
	if err := s.requireGenerator(); err != nil {
		return "", err
	}
	record, err := s.records.GetRecord(ctx, session, recordID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Escribe WhatsApp para %s. Debe %s. Estatus: %s. Soy %s. Link: %s.",
		record.Value(domain.FieldClient),
		record.Value(domain.FieldAmount),
		record.Value(domain.FieldStatus),
		session.DisplayName(),
		firstNonEmpty(req.VideoLink, s.defaults.VideoLink),
	)
	draft, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Failed to draft message", slog.String("record_id", recordID))
		return "", err
	}
	return draft, nil
}

func (s *assistantService) BuildLink(ctx context.Context, session *domain.Session, recordID string, req dto.WhatsAppLinkRequest) (*domain.Message, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: message text is required", apperrors.ErrValidation)
	}
	record, err := s.records.GetRecord(ctx, session, recordID)
	if err != nil {
		return nil, err
	}
	return s.withLink(ctx, session, record, req.Text)
}

func (s *assistantService) AnalyzeRecords(ctx context.Context, session *domain.Session) (string, error) {
	if err := s.RequireAdministrator(ctx, session); err != nil {
		return "", err
	}
	if err := s.requireGenerator(); err != nil {
		return "", err
	}

	preview, err := s.records.ListRecords(ctx, session, dto.ListRecordsParams{})
	if err != nil {
		return "", err
	}
	if len(preview) == 0 {
		return "", fmt.Errorf("%w: no data to analyze", apperrors.ErrValidation)
	}
	if len(preview) > analysisSampleMax {
		preview = preview[:analysisSampleMax]
	}

	docs := make([]map[string]string, len(preview))
	for i, r := range preview {
		docs[i] = r.Document()
	}
	payload, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("failed to encode records for analysis: %w", err)
	}

	report, err := s.generator.Generate(ctx, fmt.Sprintf("Analiza estos datos de ventas (JSON): %s. Dame un reporte ejecutivo corto.", payload))
	if err != nil {
		s.LogError(ctx, err, "Failed to analyze records", slog.Int("records", len(preview)))
		return "", err
	}
	s.LogInfo(ctx, "Analysis generated", slog.Int("records", len(preview)))
	return report, nil
}

func (s *assistantService) withLink(ctx context.Context, session *domain.Session, record *domain.Record, text string) (*domain.Message, error) {
	link, err := utils.BuildWhatsAppLink(record.Value(domain.FieldPhone), s.defaults.PhoneCountryCode, text)
	if err != nil {
		s.LogDebug(ctx, "Record has no phone", slog.String("record_id", record.RecordID))
		return nil, err
	}
	s.analytics.Enqueue(session.SessionID, "whatsapp_link_built", map[string]any{
		"record_id": record.RecordID,
		"role":      string(session.Role),
	})
	return &domain.Message{Text: text, Link: link}, nil
}

func (s *assistantService) requireGenerator() error {
	if s.generator == nil {
		return fmt.Errorf("%w: text generation is not configured, set GEMINI_API_KEY and restart the server", apperrors.ErrConfiguration)
	}
	return nil
}

// RenderMessageTemplate replaces the first occurrence of each {Field}
// placeholder with the record's value and {Video} with videoLink.
func RenderMessageTemplate(template string, record domain.Record, videoLink string) string {
	out := template
	for _, field := range domain.Fields {
		if field == domain.FieldIgnore {
			continue
		}
		value := record.Value(field)
		out = strings.Replace(out, "{"+string(field)+"}", value, 1)
		for _, alias := range placeholderAliases[field] {
			out = strings.Replace(out, "{"+alias+"}", value, 1)
		}
	}
	return strings.Replace(out, videoPlaceholder, videoLink, 1)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
