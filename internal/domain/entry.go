// Package domain contains core business entities and rules.
package domain

import "time"

// JournalEntry is a single journal entry as stored in the platform.
// The tagging pipeline only ever writes Title, Category, and Tags;
// Content belongs to the user and is never modified by AI processing.
type JournalEntry struct {
	// ID is the unique identifier for this entry.
	ID string

	// UserID is the owner of the entry.
	UserID string

	// Title is the entry title. Defaults to DefaultTitle when the user
	// provides none and the tier does not generate one.
	Title string

	// Content is the journal text. Never empty after trimming.
	Content string

	// Category classifies the entry. Empty until tagged.
	Category string

	// Tags are short labels attached by the tagging pipeline.
	// Never more than MaxTags entries.
	Tags []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tagged reports whether the entry has been through the tagging pipeline.
func (e *JournalEntry) Tagged() bool {
	return e.Tags != nil
}

// TaggingResult is the transient output of the entry tagger.
// It is never persisted directly; callers merge it into a JournalEntry write.
type TaggingResult struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Export is a full snapshot of a user's data, assembled on demand.
type Export struct {
	UserID       string         `json:"user_id"`
	Entries      []JournalEntry `json:"journal_entries"`
	Goals        []Goal         `json:"goals"`
	Achievements []Achievement  `json:"achievements"`
	ExportedAt   time.Time      `json:"exported_at"`
}
