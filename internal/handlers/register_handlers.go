package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/salesmaster_cloud/cmd/docs"
	portssvc "github.com/SscSPs/salesmaster_cloud/internal/core/ports/services"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/SscSPs/salesmaster_cloud/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimit, err := middleware.LoginRateLimit(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}
	authH := newAuthHandler(services.Session)
	registerAuthRoutes(r, authH, loginLimit)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, authH)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authH *authHandler,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Session))

	registerSessionRoutes(v1, authH)
	registerRecordRoutes(v1,
		newRecordHandler(services.Record, services.Assistant),
		newStreamHandler(services.Record, cfg.FrontendBaseURL).streamRecords,
	)
	registerImportRoutes(v1, newImportHandler(services.Import, cfg.MaxUploadBytes))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
