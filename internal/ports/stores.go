// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/journiq/journiq-server/internal/domain"
)

// EntryStore provides access to persisted journal entries.
// Implementations map to the platform's journal_entries table.
type EntryStore interface {
	// ListRecent returns the user's most recent entries, newest first,
	// capped at limit. A non-positive limit returns all entries.
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error)

	// ListUntagged returns the user's entries that have never been through
	// the tagging pipeline (tags is null).
	ListUntagged(ctx context.Context, userID string) ([]domain.JournalEntry, error)

	// GetByID retrieves a single entry.
	// Returns domain.ErrNotFound if the entry does not exist.
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)

	// Insert persists a new entry and returns it with store-assigned fields
	// (ID, timestamps) populated.
	Insert(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)

	// ApplyTagging writes a tagging result onto an existing entry.
	// Only title, category, and tags are touched; content is never modified.
	ApplyTagging(ctx context.Context, entryID string, result *domain.TaggingResult) error
}

// GoalStore provides access to persisted goals.
type GoalStore interface {
	// List returns all goals for the user, newest first.
	List(ctx context.Context, userID string) ([]domain.Goal, error)

	// ListOpen returns the user's unachieved goals.
	ListOpen(ctx context.Context, userID string) ([]domain.Goal, error)

	// Insert persists a single goal and returns it with store-assigned
	// fields populated.
	Insert(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)

	// InsertBatch persists all goals in a single write. The write is
	// all-or-nothing: on error, no goal from the batch is persisted.
	InsertBatch(ctx context.Context, goals []domain.Goal) ([]domain.Goal, error)

	// SetAchieved toggles a goal's achieved flag.
	// Returns domain.ErrNotFound if the goal does not exist.
	SetAchieved(ctx context.Context, goalID string, achieved bool) error
}

// SubscriptionStore provides access to subscription records.
type SubscriptionStore interface {
	// GetTier returns the user's subscription tier.
	// Returns domain.ErrNotFound when the user has no subscription row;
	// callers decide whether that defaults to basic.
	GetTier(ctx context.Context, userID string) (domain.Tier, error)

	// Upsert creates or replaces the user's subscription row.
	Upsert(ctx context.Context, userID string, tier domain.Tier) error
}

// AchievementStore provides read access to earned badges.
type AchievementStore interface {
	// ListByUser returns the user's achievements, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error)
}
