package services

import (
	"github.com/SscSPs/salesmaster_cloud/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/salesmaster_cloud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/platform/config"
	"github.com/SscSPs/salesmaster_cloud/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// generator may be nil, in which case the AI features report a configuration error.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	generator gateways.TextGenerator,
	analytics *utils.PosthogClientWrapper,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Session = NewSessionService(cfg)
	container.Record = NewRecordService(repos.RecordRepo)
	container.Import = NewImportService(
		repos.RecordRepo,
		WithBatchPause(cfg.ImportBatchPause),
		WithUploadTTL(cfg.UploadTTL),
		WithImportAnalytics(analytics),
	)

	assistantOptions := []AssistantServiceOption{WithMessageAnalytics(analytics)}
	if generator != nil {
		assistantOptions = append(assistantOptions, WithTextGenerator(generator))
	}
	container.Assistant = NewAssistantService(
		container.Record,
		MessageDefaults{
			Template:         cfg.MessageTemplate,
			VideoLink:        cfg.DefaultVideoLink,
			PhoneCountryCode: cfg.PhoneCountryCode,
		},
		assistantOptions...,
	)

	return container
}
