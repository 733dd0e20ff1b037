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

// insightEntryContext is how many entries feed insight generation.
// Wider than goal generation: insights look for longer trends.
const insightEntryContext = 20

// InsightService produces narrative observations about a user's
// journaling patterns. Insights are presentational only and never
// persisted.
type InsightService struct {
	entries    ports.EntryStore
	completion ports.CompletionClient
	guard      *InflightGuard
	model      string
	logger     *slog.Logger
}

// InsightServiceConfig contains dependencies for the insight service.
type InsightServiceConfig struct {
	Entries    ports.EntryStore
	Completion ports.CompletionClient
	Guard      *InflightGuard
	Model      string
	Logger     *slog.Logger
}

// NewInsightService creates an insight service.
// Panics if Entries or Completion is nil.
func NewInsightService(cfg InsightServiceConfig) *InsightService {
	if cfg.Entries == nil || cfg.Completion == nil {
		panic("InsightService: Entries and Completion are required")
	}

	guard := cfg.Guard
	if guard == nil {
		guard = NewInflightGuard()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &InsightService{
		entries:    cfg.Entries,
		completion: cfg.Completion,
		guard:      guard,
		model:      cfg.Model,
		logger:     logger.With(slog.String("component", "app.InsightService")),
	}
}

// Generate returns free-text insights over the user's recent entries.
// The completion text is returned unparsed; there is no structured
// extraction and no retry.
func (s *InsightService) Generate(ctx context.Context, userID string) (string, error) {
	release, err := s.guard.Acquire(userID, "generate-insights")
	if err != nil {
		return "", err
	}
	defer release()

	entries, err := s.entries.ListRecent(ctx, userID, insightEntryContext)
	if err != nil {
		return "", fmt.Errorf("fetching entries for insights: %w", err)
	}

	text, err := s.completion.Complete(ctx, ports.CompletionRequest{
		Model:  s.model,
		System: insightSystemPrompt,
		User:   insightUserPrompt(entries),
	})
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "insight completion failed",
			slog.Any("error", err),
		)

		return "", fmt.Errorf("generating insights: %w", err)
	}

	return text, nil
}

const insightSystemPrompt = "You are an AI that analyzes journal entries and provides meaningful insights. " +
	"Focus on patterns, trends, and potential areas of growth. " +
	"Provide 3-5 key insights in a clear, concise format."

func insightUserPrompt(entries []domain.JournalEntry) string {
	var b strings.Builder

	b.WriteString("Based on these journal entries, provide key insights:\n")

	for _, entry := range entries {
		b.WriteString("Content: ")
		b.WriteString(entry.Content)
		b.WriteString("\nTags: ")
		b.WriteString(strings.Join(entry.Tags, ", "))
		b.WriteString("\nCategory: ")
		b.WriteString(entry.Category)
		b.WriteString("\nDate: ")
		b.WriteString(entry.CreatedAt.Format("2006-01-02"))
		b.WriteString("\n\n")
	}

	return b.String()
}
