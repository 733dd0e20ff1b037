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

// Default and maximum page sizes for entry listing.
const (
	defaultEntryLimit = 20
	maxEntryLimit     = 100
)

// EntryService manages journal entries. Saving an entry runs the
// tagging pipeline for the caller's tier and merges the result into the
// persisted row.
type EntryService struct {
	entries       ports.EntryStore
	tagger        *TaggingService
	subscriptions *SubscriptionService
	events        ports.EventPublisher
	logger        *slog.Logger
}

// EntryServiceConfig contains dependencies for the entry service.
type EntryServiceConfig struct {
	Entries       ports.EntryStore
	Tagger        *TaggingService
	Subscriptions *SubscriptionService

	// Events is optional; when nil no events are forwarded.
	Events ports.EventPublisher

	Logger *slog.Logger
}

// NewEntryService creates an entry service.
// Panics if Entries, Tagger, or Subscriptions is nil.
func NewEntryService(cfg EntryServiceConfig) *EntryService {
	if cfg.Entries == nil || cfg.Tagger == nil || cfg.Subscriptions == nil {
		panic("EntryService: Entries, Tagger, and Subscriptions are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &EntryService{
		entries:       cfg.Entries,
		tagger:        cfg.Tagger,
		subscriptions: cfg.Subscriptions,
		events:        cfg.Events,
		logger:        logger.With(slog.String("component", "app.EntryService")),
	}
}

// Create validates, tags, and persists a new entry.
//
// Empty content is rejected before the tagging pipeline is ever
// invoked. The title follows the tier policy: generated on pro, the
// user's own title (or the default) below that. A tagging failure fails
// the save - no entry is written with partially applied tags.
func (s *EntryService) Create(ctx context.Context, userID, title, content string) (*domain.JournalEntry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewValidationError("content", "must not be empty")
	}

	tier := s.subscriptions.ResolveTier(ctx, userID)

	result, err := s.tagger.TagEntry(ctx, content, tier)
	if err != nil {
		return nil, err
	}

	entry := &domain.JournalEntry{
		UserID:   userID,
		Title:    mergeTitle(title, result, domain.PolicyFor(tier)),
		Content:  content,
		Category: result.Category,
		Tags:     result.Tags,
	}

	inserted, err := s.entries.Insert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("persisting entry: %w", err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "entry created",
		slog.String("entry_id", inserted.ID),
		slog.String("category", inserted.Category),
	)

	s.publish(ctx, ports.Event{
		Type:   "entry.tagged",
		UserID: userID,
		Payload: map[string]any{
			"entry_id": inserted.ID,
			"title":    inserted.Title,
			"category": inserted.Category,
			"tags":     inserted.Tags,
		},
	})

	return inserted, nil
}

// List returns the user's most recent entries. A non-positive limit
// uses the default; the maximum is capped.
func (s *EntryService) List(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultEntryLimit
	}

	if limit > maxEntryLimit {
		limit = maxEntryLimit
	}

	return s.entries.ListRecent(ctx, userID, limit)
}

// Get returns a single entry. Entries belonging to other users are
// reported as not found rather than forbidden, to avoid leaking
// their existence.
func (s *EntryService) Get(ctx context.Context, userID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.UserID != userID {
		return nil, domain.NewNotFoundError("entry", entryID)
	}

	return entry, nil
}

// mergeTitle resolves the stored title from the user's input, the
// tagging result, and the tier policy.
func mergeTitle(userTitle string, result *domain.TaggingResult, policy domain.TaggingPolicy) string {
	if policy.GeneratesTitle {
		return result.Title
	}

	userTitle = strings.TrimSpace(userTitle)
	if policy.CallsModel && userTitle != "" {
		return userTitle
	}

	return domain.DefaultTitle
}

func (s *EntryService) publish(ctx context.Context, event ports.Event) {
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
