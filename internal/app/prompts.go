package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/platform/logging"
	"github.com/journiq/journiq-server/internal/ports"
)

// PromptService produces a single reflective journal prompt grounded in
// the user's open goals.
type PromptService struct {
	goals      ports.GoalStore
	completion ports.CompletionClient
	model      string
	logger     *slog.Logger
}

// PromptServiceConfig contains dependencies for the prompt service.
type PromptServiceConfig struct {
	Goals      ports.GoalStore
	Completion ports.CompletionClient
	Model      string
	Logger     *slog.Logger
}

// NewPromptService creates a prompt service.
// Panics if Goals or Completion is nil.
func NewPromptService(cfg PromptServiceConfig) *PromptService {
	if cfg.Goals == nil || cfg.Completion == nil {
		panic("PromptService: Goals and Completion are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PromptService{
		goals:      cfg.Goals,
		completion: cfg.Completion,
		model:      cfg.Model,
		logger:     logger.With(slog.String("component", "app.PromptService")),
	}
}

// Generate returns one reflective journal prompt. A user with no open
// goals still gets a prompt - the model is called with empty goal
// context and produces a generic one.
func (s *PromptService) Generate(ctx context.Context, userID string) (string, error) {
	goals, err := s.goals.ListOpen(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("fetching goals for prompt: %w", err)
	}

	text, err := s.completion.Complete(ctx, ports.CompletionRequest{
		Model:  s.model,
		System: promptSystemPrompt,
		User:   promptUserPrompt(goals),
	})
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "prompt completion failed",
			slog.Any("error", err),
		)

		return "", fmt.Errorf("generating prompt: %w", err)
	}

	return text, nil
}

const promptSystemPrompt = "You are an AI that generates thoughtful journal prompts. " +
	"Consider the user's current goals when generating prompts to help them " +
	"reflect on their progress and challenges."

func promptUserPrompt(goals []domain.Goal) string {
	var b strings.Builder

	b.WriteString("Generate a journal prompt that helps reflect on these goals:\n")

	for _, goal := range goals {
		b.WriteString("- ")
		b.WriteString(goal.Content)
		b.WriteString("\n")
	}

	return b.String()
}
