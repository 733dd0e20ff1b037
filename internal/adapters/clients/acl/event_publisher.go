package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/journiq/journiq-server/internal/adapters/clients"
	"github.com/journiq/journiq-server/internal/platform/logging"
	"github.com/journiq/journiq-server/internal/ports"
)

// webhookServiceName identifies the webhook consumer in errors and logs.
const webhookServiceName = "webhook-sink"

// WebhookPublisherConfig contains configuration for the webhook publisher.
type WebhookPublisherConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the webhook consumer.
	Client *clients.Client

	// Path is the endpoint path events are delivered to.
	Path string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// WebhookPublisher implements ports.EventPublisher by POSTing events to
// a configured webhook endpoint. Delivery is fire-and-forget from the
// pipeline's perspective; callers log failures and move on.
type WebhookPublisher struct {
	BaseAdapter
	path   string
	logger *slog.Logger
}

// NewWebhookPublisher creates a new webhook publisher adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewWebhookPublisher(cfg WebhookPublisherConfig) *WebhookPublisher {
	if cfg.Client == nil {
		panic("WebhookPublisher: Client is required")
	}

	path := cfg.Path
	if path == "" {
		path = "/events"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &WebhookPublisher{
		BaseAdapter: NewBaseAdapter(cfg.Client, webhookServiceName),
		path:        path,
		logger:      logger,
	}
}

// Publish delivers one event to the webhook endpoint.
// Implements ports.EventPublisher.
func (p *WebhookPublisher) Publish(ctx context.Context, event ports.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	p.logger.Log(ctx, logging.LevelTrace, "delivering event",
		slog.String("path", p.path),
		slog.String("type", event.Type))

	body, err := p.Post(ctx, p.path, bytes.NewReader(payload), "publish event")
	if err != nil {
		return err
	}
	_ = body.Close()

	p.logger.DebugContext(ctx, "event delivered", slog.String("type", event.Type))

	return nil
}
