// Package app contains application services that orchestrate use cases.
// This layer coordinates the tagging pipeline between domain policy and
// the external completion service and stores, through ports.
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

// TaggingService produces titles, categories, and tags for journal
// entries according to the caller's subscription tier.
type TaggingService struct {
	completion ports.CompletionClient
	model      string
	logger     *slog.Logger
}

// TaggingServiceConfig contains dependencies for the tagging service.
type TaggingServiceConfig struct {
	Completion ports.CompletionClient

	// Model overrides the completion model. Empty uses the client default.
	Model string

	Logger *slog.Logger
}

// NewTaggingService creates a tagging service.
// Panics if Completion is nil.
func NewTaggingService(cfg TaggingServiceConfig) *TaggingService {
	if cfg.Completion == nil {
		panic("TaggingService: Completion is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TaggingService{
		completion: cfg.Completion,
		model:      cfg.Model,
		logger:     logger.With(slog.String("component", "app.TaggingService")),
	}
}

// TagEntry analyzes entry content and returns a tagging result.
//
// The basic tier never reaches the completion service: it gets the
// deterministic default result for free. Plus and pro issue exactly one
// completion call; a failed call fails the whole operation with nothing
// applied. Malformed output does not fail the operation - missing
// sections degrade to defaults inside the parser.
func (s *TaggingService) TagEntry(ctx context.Context, content string, tier domain.Tier) (*domain.TaggingResult, error) {
	logger := logging.FromContext(ctx).With(slog.String("tier", tier.String()))

	policy := domain.PolicyFor(tier)
	if !policy.CallsModel {
		logger.DebugContext(ctx, "tagging short-circuited, tier gets defaults")

		return domain.BasicTaggingResult(), nil
	}

	text, err := s.completion.Complete(ctx, ports.CompletionRequest{
		Model:  s.model,
		System: taggingSystemPrompt(policy),
		User:   taggingUserPrompt(content, tier),
	})
	if err != nil {
		logger.ErrorContext(ctx, "tagging completion failed", slog.Any("error", err))

		return nil, fmt.Errorf("tagging entry: %w", err)
	}

	result := ParseTaggingResponse(text, policy)

	if policy.ConstrainsCategory && !domain.InTaxonomy(result.Category) {
		logger.DebugContext(ctx, "coercing out-of-taxonomy category",
			slog.String("category", result.Category),
		)
		result.Category = domain.DefaultCategory
	}

	if domain.InTaxonomy(result.Category) {
		result.Category = domain.CanonicalCategory(result.Category)
	}

	logger.InfoContext(ctx, "entry tagged",
		slog.String("category", result.Category),
		slog.Int("tag_count", len(result.Tags)),
	)

	return result, nil
}

// taggingSystemPrompt frames the analysis task for the model. The pro
// tier is allowed to invent categories and is asked for a title; plus
// is pinned to the fixed taxonomy.
func taggingSystemPrompt(policy domain.TaggingPolicy) string {
	taxonomy := strings.Join(domain.Categories, ", ")

	if policy.GeneratesTitle {
		return "You are an AI assistant that analyzes journal entries. " +
			"Generate a concise title, relevant category, and up to 5 tags. " +
			"For categories, either suggest a custom one or choose from: " + taxonomy + ". " +
			"Tags should be single words or short phrases. " +
			"Respond with labeled lines: Title:, Category:, Tags:."
	}

	return "You are an AI assistant that analyzes journal entries. " +
		"Choose a category from: " + taxonomy + ". " +
		"Also generate up to 5 relevant tags. " +
		"Respond with labeled lines: Category:, Tags:."
}

// taggingUserPrompt embeds the entry content in the analysis request.
func taggingUserPrompt(content string, tier domain.Tier) string {
	var b strings.Builder

	b.WriteString("Analyze this journal entry and provide: ")

	if domain.PolicyFor(tier).GeneratesTitle {
		b.WriteString("a title, ")
	}

	b.WriteString("a category")

	if domain.PolicyFor(tier).ConstrainsCategory {
		b.WriteString(" from the predefined list")
	}

	b.WriteString(", and relevant tags:\n\n")
	b.WriteString(content)

	return b.String()
}
