package services

import (
	"context"

	"github.com/SscSPs/salesmaster_cloud/internal/core/domain"
	"github.com/SscSPs/salesmaster_cloud/internal/dto"
)

// MessageComposerSvc builds WhatsApp messages for a record.
type MessageComposerSvc interface {
	// RenderTemplate fills the message template and returns text and deep link.
	RenderTemplate(ctx context.Context, session *domain.Session, recordID string, req dto.TemplateMessageRequest) (*domain.Message, error)

	// DraftMessage asks the text generator for a message. The text may be edited before sending.
	DraftMessage(ctx context.Context, session *domain.Session, recordID string, req dto.DraftMessageRequest) (string, error)

	// BuildLink returns the deep link for arbitrary text addressed to the record's phone.
	BuildLink(ctx context.Context, session *domain.Session, recordID string, req dto.WhatsAppLinkRequest) (*domain.Message, error)
}

// AnalystSvc produces reports over the collection.
type AnalystSvc interface {
	// AnalyzeRecords asks the text generator for a short executive report. Administrators only.
	AnalyzeRecords(ctx context.Context, session *domain.Session) (string, error)
}

// AssistantSvcFacade combines all assistant-related service interfaces
type AssistantSvcFacade interface {
	MessageComposerSvc
	AnalystSvc
}
