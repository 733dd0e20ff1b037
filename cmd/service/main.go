// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/journiq/journiq-server/internal/adapters/clients"
	"github.com/journiq/journiq-server/internal/adapters/clients/acl"
	"github.com/journiq/journiq-server/internal/adapters/http"
	"github.com/journiq/journiq-server/internal/adapters/http/handlers"
	"github.com/journiq/journiq-server/internal/adapters/storage/supabase"
	"github.com/journiq/journiq-server/internal/app"
	"github.com/journiq/journiq-server/internal/platform/config"
	"github.com/journiq/journiq-server/internal/platform/logging"
	"github.com/journiq/journiq-server/internal/platform/telemetry"
	"github.com/journiq/journiq-server/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create HTTP clients for downstream services (ACL pattern)

	// Completion calls are expensive and not idempotent from a billing
	// standpoint; never retry them.
	completionRetry := cfg.Client.Retry
	completionRetry.MaxAttempts = 1

	completionHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Completion.BaseURL,
		ServiceName: cfg.Services.Completion.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       completionRetry,
		Circuit:     cfg.Client.CircuitBreaker,
		AuthFunc:    bearerAuth(cfg.Services.Completion.APIKey),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating completion HTTP client: %w", err)
	}

	databaseHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Database.BaseURL,
		ServiceName: cfg.Services.Database.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		AuthFunc:    supabaseAuth(cfg.Services.Database.ServiceKey),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating database HTTP client: %w", err)
	}

	// 7. Create adapters
	completionClient := acl.NewCompletionClient(acl.CompletionClientConfig{
		Client:       completionHTTP,
		DefaultModel: cfg.Services.Completion.Model,
		Logger:       logger,
	})

	storeCfg := supabase.StoreConfig{Client: databaseHTTP}
	entryStore := supabase.NewEntryStore(storeCfg)
	goalStore := supabase.NewGoalStore(storeCfg)
	subscriptionStore := supabase.NewSubscriptionStore(storeCfg)
	achievementStore := supabase.NewAchievementStore(storeCfg)

	if err := healthRegistry.Register(completionClient); err != nil {
		return fmt.Errorf("registering completion health check: %w", err)
	}

	if err := healthRegistry.Register(entryStore); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	var billingClient ports.BillingClient

	if cfg.Services.Billing.Enabled {
		billingHTTP, err := clients.New(&clients.Config{
			BaseURL:     cfg.Services.Billing.BaseURL,
			ServiceName: cfg.Services.Billing.Name,
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			AuthFunc:    bearerAuth(cfg.Services.Billing.APIKey),
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("creating billing HTTP client: %w", err)
		}

		billingClient = acl.NewBillingClient(acl.BillingClientConfig{
			Client: billingHTTP,
			Logger: logger,
		})
	}

	var eventPublisher ports.EventPublisher

	if cfg.Services.Webhook.Enabled {
		webhookHTTP, err := clients.New(&clients.Config{
			BaseURL:     cfg.Services.Webhook.BaseURL,
			ServiceName: cfg.Services.Webhook.Name,
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("creating webhook HTTP client: %w", err)
		}

		eventPublisher = acl.NewWebhookPublisher(acl.WebhookPublisherConfig{
			Client: webhookHTTP,
			Path:   cfg.Services.Webhook.Path,
			Logger: logger,
		})
	}

	// 8. Create application services. The generators share one guard so
	// a user's in-flight run blocks duplicates across instances of the
	// same operation.
	guard := app.NewInflightGuard()

	tagger := app.NewTaggingService(app.TaggingServiceConfig{
		Completion: completionClient,
		Model:      cfg.Services.Completion.Model,
		Logger:     logger,
	})

	subscriptionService := app.NewSubscriptionService(app.SubscriptionServiceConfig{
		Store:      subscriptionStore,
		Billing:    billingClient,
		PriceTiers: cfg.Services.Billing.PriceTiers,
		Logger:     logger,
	})

	goalService := app.NewGoalService(app.GoalServiceConfig{
		Entries:    entryStore,
		Goals:      goalStore,
		Completion: completionClient,
		Events:     eventPublisher,
		Guard:      guard,
		Model:      cfg.Services.Completion.Model,
		Logger:     logger,
	})

	insightService := app.NewInsightService(app.InsightServiceConfig{
		Entries:    entryStore,
		Completion: completionClient,
		Guard:      guard,
		Model:      cfg.Services.Completion.Model,
		Logger:     logger,
	})

	promptService := app.NewPromptService(app.PromptServiceConfig{
		Goals:      goalStore,
		Completion: completionClient,
		Model:      cfg.Services.Completion.Model,
		Logger:     logger,
	})

	entryService := app.NewEntryService(app.EntryServiceConfig{
		Entries:       entryStore,
		Tagger:        tagger,
		Subscriptions: subscriptionService,
		Events:        eventPublisher,
		Logger:        logger,
	})

	backfillService := app.NewBackfillService(app.BackfillServiceConfig{
		Entries:       entryStore,
		Tagger:        tagger,
		Subscriptions: subscriptionService,
		Guard:         guard,
		Logger:        logger,
	})

	exportService := app.NewExportService(app.ExportServiceConfig{
		Entries:      entryStore,
		Goals:        goalStore,
		Achievements: achievementStore,
		Logger:       logger,
	})

	// 9. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)

	aiHandler := handlers.NewAIHandler(handlers.AIHandlerConfig{
		Tagger:        tagger,
		Subscriptions: subscriptionService,
		Goals:         goalService,
		Insights:      insightService,
		Prompts:       promptService,
		Backfill:      backfillService,
	})

	// 10. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 11. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:              logger,
		AuthConfig:          &cfg.Auth,
		AppConfig:           &cfg.App,
		HealthHandler:       healthHandler,
		AIHandler:           aiHandler,
		EntryHandler:        handlers.NewEntryHandler(entryService),
		GoalHandler:         handlers.NewGoalHandler(goalService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(subscriptionService),
		ExportHandler:       handlers.NewExportHandler(exportService),
		Timeout:             http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// bearerAuth returns an AuthFunc injecting a bearer token. A blank key
// installs nothing, which local stubs accept.
func bearerAuth(key string) func(*nethttp.Request) {
	if key == "" {
		return nil
	}

	return func(req *nethttp.Request) {
		req.Header.Set("Authorization", "Bearer "+key)
	}
}

// supabaseAuth returns an AuthFunc injecting the service-role key the
// PostgREST endpoint expects in both header forms.
func supabaseAuth(key string) func(*nethttp.Request) {
	if key == "" {
		return nil
	}

	return func(req *nethttp.Request) {
		req.Header.Set("apikey", key)
		req.Header.Set("Authorization", "Bearer "+key)
	}
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
