package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/salesmaster_cloud/internal/adapters/textgen"
	"github.com/SscSPs/salesmaster_cloud/internal/core/ports/gateways"
	"github.com/SscSPs/salesmaster_cloud/internal/core/services"
	"github.com/SscSPs/salesmaster_cloud/internal/handlers"
	"github.com/SscSPs/salesmaster_cloud/internal/middleware"
	"github.com/SscSPs/salesmaster_cloud/internal/platform/config"
	"github.com/SscSPs/salesmaster_cloud/internal/repositories/database/pgsql"
	"github.com/SscSPs/salesmaster_cloud/internal/utils"
	"github.com/SscSPs/salesmaster_cloud/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand(newLogger func() *slog.Logger) *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Apply pending migrations and start the HTTP server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			slog.SetDefault(logger)
			if err := runServe(cmd.Context(), logger, skipMigrations); err != nil {
				logger.Error("Server stopped", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Start without applying migrations.")
	return cmd
}

func runServe(ctx context.Context, logger *slog.Logger, skipMigrations bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if skipMigrations {
		logger.Warn("Skipping database migrations.")
	} else {
		logger.Info("Running database migrations...")
		if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer analytics.Close()

	var generator gateways.TextGenerator
	if cfg.HasTextGenerator() {
		gemini, err := textgen.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiEndpoint)
		if err != nil {
			return fmt.Errorf("failed to initialize text generator: %w", err)
		}
		generator = gemini
		logger.Info("Text generator ready", slog.String("model", cfg.GeminiModel))
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, generator, analytics)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.PosthogMiddleware(analytics))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		return err
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}

// corsConfig admits the web client's origin. Without FRONTEND_BASE_URL every
// origin is allowed, which is only acceptable outside production.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.FrontendBaseURL != "" {
		corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	} else {
		corsCfg.AllowAllOrigins = !cfg.IsProduction
		if cfg.IsProduction {
			corsCfg.AllowOrigins = []string{"http://localhost:8080"}
		}
	}
	return corsCfg
}
