package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/ports"
)

// entriesTable is the journal entries table name.
const entriesTable = "journal_entries"

var _ ports.EntryStore = (*EntryStore)(nil)

// EntryStore implements ports.EntryStore on the journal_entries table.
type EntryStore struct {
	table
}

// NewEntryStore creates a journal entry store. Panics if cfg.Client is nil.
func NewEntryStore(cfg StoreConfig) *EntryStore {
	return &EntryStore{table: newTable(cfg, entriesTable)}
}

// entryRow is the journal_entries column shape.
type entryRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// insertEntryRow carries only the writable columns; the database owns
// id and the timestamps.
type insertEntryRow struct {
	UserID   string   `json:"user_id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// taggingPatch is the column subset the tagging pipeline may write.
// Content is deliberately absent.
type taggingPatch struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (r *entryRow) toDomain() domain.JournalEntry {
	return domain.JournalEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		Category:  r.Category,
		Tags:      r.Tags,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func entriesToDomain(rows []entryRow) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].toDomain())
	}

	return entries
}

// ListRecent returns the user's entries newest first, capped at limit.
// A non-positive limit returns all entries.
func (s *EntryStore) ListRecent(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	query := "user_id=eq." + url.QueryEscape(userID) + "&order=created_at.desc"
	if limit > 0 {
		query += fmt.Sprintf("&limit=%d", limit)
	}

	body, err := s.get(ctx, query, "list entries")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[entryRow](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	return entriesToDomain(rows), nil
}

// ListUntagged returns the user's entries that have never been tagged.
func (s *EntryStore) ListUntagged(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	query := "user_id=eq." + url.QueryEscape(userID) + "&tags=is.null&order=created_at.desc"

	body, err := s.get(ctx, query, "list untagged entries")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[entryRow](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	return entriesToDomain(rows), nil
}

// GetByID fetches one entry.
func (s *EntryStore) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	query := "id=eq." + url.QueryEscape(id) + "&limit=1"

	body, err := s.get(ctx, query, "get entry")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[entryRow](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	if len(rows) == 0 {
		return nil, domain.NewNotFoundError("journal entry", id)
	}

	entry := rows[0].toDomain()

	return &entry, nil
}

// Insert persists a new entry and returns the stored row.
func (s *EntryStore) Insert(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	payload := insertEntryRow{
		UserID:   entry.UserID,
		Title:    entry.Title,
		Content:  entry.Content,
		Category: entry.Category,
		Tags:     entry.Tags,
	}

	body, err := s.write(ctx, http.MethodPost, "", payload, preferRepresentation, "insert entry")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[entryRow](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	if len(rows) == 0 {
		return nil, domain.NewUnavailableError(serviceName, "insert returned no rows")
	}

	stored := rows[0].toDomain()

	return &stored, nil
}

// ApplyTagging writes the tagging result onto an existing entry.
func (s *EntryStore) ApplyTagging(ctx context.Context, entryID string, result *domain.TaggingResult) error {
	query := "id=eq." + url.QueryEscape(entryID)
	payload := taggingPatch{
		Title:    result.Title,
		Category: result.Category,
		Tags:     result.Tags,
	}

	body, err := s.write(ctx, http.MethodPatch, query, payload, "", "apply tagging")
	if err != nil {
		return err
	}
	discard(body)

	return nil
}

// Name implements ports.HealthChecker.
func (s *EntryStore) Name() string {
	return serviceName
}

// Check verifies connectivity by hitting the PostgREST root.
// Implements ports.HealthChecker.
func (s *EntryStore) Check(ctx context.Context) error {
	resp, err := s.client.Get(ctx, restPrefix)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("database API returned status %d", resp.StatusCode)
	}

	return nil
}
