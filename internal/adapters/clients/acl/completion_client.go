package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/journiq/journiq-server/internal/adapters/clients"
	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/platform/logging"
	"github.com/journiq/journiq-server/internal/ports"
)

// completionServiceName identifies the completion upstream in errors and logs.
const completionServiceName = "completion-service"

// CompletionClientConfig contains configuration for the completion client.
type CompletionClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the completion API endpoint.
	Client *clients.Client

	// DefaultModel serves requests that do not name a model.
	DefaultModel string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// CompletionClient implements ports.CompletionClient against an
// OpenAI-compatible chat completions API. It translates the external
// chat payload to the single-text contract the application layer wants.
type CompletionClient struct {
	BaseAdapter
	defaultModel string
	logger       *slog.Logger
}

// NewCompletionClient creates a new completion client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewCompletionClient(cfg CompletionClientConfig) *CompletionClient {
	if cfg.Client == nil {
		panic("CompletionClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CompletionClient{
		BaseAdapter:  NewBaseAdapter(cfg.Client, completionServiceName),
		defaultModel: cfg.DefaultModel,
		logger:       logger,
	}
}

// chatMessage is one turn in the external chat payload.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the external request DTO. Never exposed outside the ACL.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatResponse is the external response DTO.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a single-turn completion request and returns the raw
// completion text. Implements ports.CompletionClient.
func (c *CompletionClient) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	const path = "/v1/chat/completions"

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	payload, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding completion request: %w", err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", path),
		slog.String("model", model))

	body, err := c.Post(ctx, path, bytes.NewReader(payload), "complete")
	if err != nil {
		return "", err
	}

	resp, err := DecodeResponse[chatResponse](body)
	if err != nil {
		return "", domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewMalformedCompletionError("complete", "response contained no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", domain.NewMalformedCompletionError("complete", "completion text was empty")
	}

	c.logger.DebugContext(ctx, "completion received",
		slog.String("model", model),
		slog.Int("length", len(text)))

	return text, nil
}

// Name implements ports.HealthChecker.
func (c *CompletionClient) Name() string {
	return completionServiceName
}

// Check verifies connectivity by listing models.
// Implements ports.HealthChecker.
func (c *CompletionClient) Check(ctx context.Context) error {
	resp, err := c.Client().Get(ctx, "/v1/models")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	return nil
}
