package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/journiq/journiq-server/internal/adapters/http/handlers"
	"github.com/journiq/journiq-server/internal/adapters/http/middleware"
	"github.com/journiq/journiq-server/internal/platform/config"
	"github.com/journiq/journiq-server/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AuthConfig contains identity header configuration.
	AuthConfig *config.AuthConfig

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// AIHandler handles the AI pipeline endpoints.
	AIHandler *handlers.AIHandler

	// EntryHandler handles journal entry endpoints.
	EntryHandler *handlers.EntryHandler

	// GoalHandler handles goal endpoints.
	GoalHandler *handlers.GoalHandler

	// SubscriptionHandler handles subscription endpoints.
	SubscriptionHandler *handlers.SubscriptionHandler

	// ExportHandler handles the data export endpoint.
	ExportHandler *handlers.ExportHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-route or globally)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /api/v1/ (public API): Business endpoints, auth as needed
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Register health endpoints (no auth, no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Setup API v1 routes with timeout
	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	// Register API routes
	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers business API routes. Every route requires a
// caller identity; requests without one are rejected before any handler
// or downstream call runs.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	protected := rg.Group("")
	protected.Use(middleware.RequireIdentity(cfg.AuthConfig))

	if cfg.AIHandler != nil {
		cfg.AIHandler.RegisterAIRoutes(protected)
	}

	if cfg.EntryHandler != nil {
		cfg.EntryHandler.RegisterEntryRoutes(protected)
	}

	if cfg.GoalHandler != nil {
		cfg.GoalHandler.RegisterGoalRoutes(protected)
	}

	if cfg.SubscriptionHandler != nil {
		cfg.SubscriptionHandler.RegisterSubscriptionRoutes(protected)
	}

	if cfg.ExportHandler != nil {
		cfg.ExportHandler.RegisterExportRoutes(protected)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	authCfg *config.AuthConfig,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AuthConfig:    authCfg,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
