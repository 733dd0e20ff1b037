package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/platform/logging"
	"github.com/journiq/journiq-server/internal/ports"
)

// recentEntryContext is how many entries feed goal generation.
const recentEntryContext = 10

// GoalService manages goals: listing, manual creation, toggling, and
// AI generation from recent journal context.
type GoalService struct {
	entries    ports.EntryStore
	goals      ports.GoalStore
	completion ports.CompletionClient
	events     ports.EventPublisher
	guard      *InflightGuard
	model      string
	logger     *slog.Logger
}

// GoalServiceConfig contains dependencies for the goal service.
type GoalServiceConfig struct {
	Entries    ports.EntryStore
	Goals      ports.GoalStore
	Completion ports.CompletionClient

	// Events is optional; when nil no events are forwarded.
	Events ports.EventPublisher

	// Guard is optional; when nil a private guard is created.
	Guard *InflightGuard

	Model  string
	Logger *slog.Logger
}

// NewGoalService creates a goal service.
// Panics if Entries, Goals, or Completion is nil.
func NewGoalService(cfg GoalServiceConfig) *GoalService {
	if cfg.Entries == nil || cfg.Goals == nil || cfg.Completion == nil {
		panic("GoalService: Entries, Goals, and Completion are required")
	}

	guard := cfg.Guard
	if guard == nil {
		guard = NewInflightGuard()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &GoalService{
		entries:    cfg.Entries,
		goals:      cfg.Goals,
		completion: cfg.Completion,
		events:     cfg.Events,
		guard:      guard,
		model:      cfg.Model,
		logger:     logger.With(slog.String("component", "app.GoalService")),
	}
}

// Generate produces new goals from the user's recent entries and open
// goals, persists them, and returns the inserted set.
//
// The insert is all-or-nothing: a malformed completion inserts zero
// rows. Generation is deliberately not idempotent - each call appends a
// fresh batch, informed by the goals the previous call inserted. A
// concurrent call for the same user returns domain.ErrConflict instead
// of a duplicate batch.
func (s *GoalService) Generate(ctx context.Context, userID string) ([]domain.Goal, error) {
	release, err := s.guard.Acquire(userID, "generate-goals")
	if err != nil {
		return nil, err
	}
	defer release()

	logger := logging.FromContext(ctx).With(slog.String("user_id", userID))

	entries, existing, err := Parallel2(ctx,
		func(ctx context.Context) ([]domain.JournalEntry, error) {
			return s.entries.ListRecent(ctx, userID, recentEntryContext)
		},
		func(ctx context.Context) ([]domain.Goal, error) {
			return s.goals.ListOpen(ctx, userID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("fetching goal context: %w", err)
	}

	text, err := s.completion.Complete(ctx, ports.CompletionRequest{
		Model:  s.model,
		System: goalSystemPrompt,
		User:   goalUserPrompt(entries, existing),
	})
	if err != nil {
		logger.ErrorContext(ctx, "goal completion failed", slog.Any("error", err))

		return nil, fmt.Errorf("generating goals: %w", err)
	}

	contents, err := parseGoalBatch(text)
	if err != nil {
		logger.ErrorContext(ctx, "failed to parse generated goals",
			slog.Any("error", err),
		)

		return nil, err
	}

	batch := make([]domain.Goal, 0, len(contents))
	for _, content := range contents {
		batch = append(batch, domain.Goal{
			UserID:        userID,
			Content:       content,
			IsAIGenerated: true,
		})
	}

	inserted, err := s.goals.InsertBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("persisting generated goals: %w", err)
	}

	logger.InfoContext(ctx, "goals generated", slog.Int("count", len(inserted)))

	s.publish(ctx, ports.Event{
		Type:    "goals.generated",
		UserID:  userID,
		Payload: inserted,
	})

	return inserted, nil
}

// Create persists a manually entered goal.
func (s *GoalService) Create(ctx context.Context, userID, content string) (*domain.Goal, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewValidationError("content", "must not be empty")
	}

	goal, err := s.goals.Insert(ctx, &domain.Goal{
		UserID:        userID,
		Content:       content,
		IsAIGenerated: false,
	})
	if err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	return goal, nil
}

// List returns the user's goals; openOnly restricts to unachieved ones.
func (s *GoalService) List(ctx context.Context, userID string, openOnly bool) ([]domain.Goal, error) {
	if openOnly {
		return s.goals.ListOpen(ctx, userID)
	}

	return s.goals.List(ctx, userID)
}

// SetAchieved toggles a goal's achieved flag.
func (s *GoalService) SetAchieved(ctx context.Context, goalID string, achieved bool) error {
	err := s.goals.SetAchieved(ctx, goalID, achieved)
	if err != nil {
		return fmt.Errorf("updating goal %s: %w", goalID, err)
	}

	return nil
}

// publish forwards an event best-effort. Event delivery never fails a
// generation that already committed.
func (s *GoalService) publish(ctx context.Context, event ports.Event) {
	if s.events == nil {
		return
	}

	if err := s.events.Publish(ctx, event); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "event publish failed",
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
	}
}

// goalSystemPrompt instructs the model to emit a machine-parseable
// goal list.
const goalSystemPrompt = "You are an AI that generates actionable, specific goals based on journal entries. " +
	"Consider existing goals to avoid duplicates and ensure goals build upon each other. " +
	"Generate 3 new goals that are concrete and measurable. " +
	"Respond with only a JSON array of objects, each with a 'content' field."

// goalUserPrompt embeds recent entries and open goals as generation context.
func goalUserPrompt(entries []domain.JournalEntry, existing []domain.Goal) string {
	var b strings.Builder

	b.WriteString("Based on these journal entries:\n")

	for _, entry := range entries {
		b.WriteString("Content: ")
		b.WriteString(entry.Content)
		b.WriteString("\nTags: ")
		b.WriteString(strings.Join(entry.Tags, ", "))
		b.WriteString("\nCategory: ")
		b.WriteString(entry.Category)
		b.WriteString("\n\n")
	}

	b.WriteString("Existing goals:\n")

	for _, goal := range existing {
		b.WriteString("- ")
		b.WriteString(goal.Content)
		b.WriteString("\n")
	}

	b.WriteString("\nGenerate 3 new goals.")

	return b.String()
}

// goalRecord is the expected element shape of the model's JSON array.
type goalRecord struct {
	Content string `json:"content"`
}

// parseGoalBatch parses the completion as a JSON array of {content}
// records. Markdown code fences around the array are tolerated; any
// other deviation is a hard failure so that no partial batch is ever
// inserted.
func parseGoalBatch(text string) ([]string, error) {
	trimmed := stripCodeFence(strings.TrimSpace(text))

	var records []goalRecord
	if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
		return nil, domain.NewMalformedCompletionError("generate-goals", "response is not a JSON array of {content} records")
	}

	contents := make([]string, 0, len(records))
	for _, record := range records {
		content := strings.TrimSpace(record.Content)
		if content == "" {
			continue
		}

		contents = append(contents, content)
	}

	if len(contents) == 0 {
		return nil, domain.NewMalformedCompletionError("generate-goals", "response contains no goals")
	}

	return contents, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or
// without a language tag.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		s = s[idx+1:]
	}

	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
