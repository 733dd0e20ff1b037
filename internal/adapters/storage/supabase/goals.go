package supabase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/ports"
)

// goalsTable is the goals table name.
const goalsTable = "goals"

var _ ports.GoalStore = (*GoalStore)(nil)

// GoalStore implements ports.GoalStore on the goals table.
type GoalStore struct {
	table
}

// NewGoalStore creates a goal store. Panics if cfg.Client is nil.
func NewGoalStore(cfg StoreConfig) *GoalStore {
	return &GoalStore{table: newTable(cfg, goalsTable)}
}

// goalRow is the goals column shape.
type goalRow struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Content       string    `json:"content"`
	IsAchieved    bool      `json:"is_achieved"`
	IsAIGenerated bool      `json:"is_ai_generated"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type insertGoalRow struct {
	UserID        string `json:"user_id"`
	Content       string `json:"content"`
	IsAchieved    bool   `json:"is_achieved"`
	IsAIGenerated bool   `json:"is_ai_generated"`
}

func (r *goalRow) toDomain() domain.Goal {
	return domain.Goal{
		ID:            r.ID,
		UserID:        r.UserID,
		Content:       r.Content,
		IsAchieved:    r.IsAchieved,
		IsAIGenerated: r.IsAIGenerated,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func goalsToDomain(rows []goalRow) []domain.Goal {
	goals := make([]domain.Goal, 0, len(rows))
	for i := range rows {
		goals = append(goals, rows[i].toDomain())
	}

	return goals
}

func toInsertGoalRows(goals []domain.Goal) []insertGoalRow {
	rows := make([]insertGoalRow, 0, len(goals))
	for i := range goals {
		rows = append(rows, insertGoalRow{
			UserID:        goals[i].UserID,
			Content:       goals[i].Content,
			IsAchieved:    goals[i].IsAchieved,
			IsAIGenerated: goals[i].IsAIGenerated,
		})
	}

	return rows
}

// List returns all of the user's goals, newest first.
func (s *GoalStore) List(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := "user_id=eq." + url.QueryEscape(userID) + "&order=created_at.desc"

	return s.list(ctx, query, "list goals")
}

// ListOpen returns the user's unachieved goals, newest first.
func (s *GoalStore) ListOpen(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := "user_id=eq." + url.QueryEscape(userID) + "&is_achieved=eq.false&order=created_at.desc"

	return s.list(ctx, query, "list open goals")
}

func (s *GoalStore) list(ctx context.Context, query, operation string) ([]domain.Goal, error) {
	body, err := s.get(ctx, query, operation)
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[goalRow](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	return goalsToDomain(rows), nil
}

// Insert persists one goal and returns the stored row.
func (s *GoalStore) Insert(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	stored, err := s.insertRows(ctx, toInsertGoalRows([]domain.Goal{*goal}), "insert goal")
	if err != nil {
		return nil, err
	}

	if len(stored) == 0 {
		return nil, domain.NewUnavailableError(serviceName, "insert returned no rows")
	}

	return &stored[0], nil
}

// InsertBatch persists goals in one request. PostgREST wraps a bulk
// insert in a single statement, so the batch lands all-or-nothing.
func (s *GoalStore) InsertBatch(ctx context.Context, goals []domain.Goal) ([]domain.Goal, error) {
	if len(goals) == 0 {
		return nil, nil
	}

	return s.insertRows(ctx, toInsertGoalRows(goals), "insert goals")
}

func (s *GoalStore) insertRows(ctx context.Context, payload []insertGoalRow, operation string) ([]domain.Goal, error) {
	body, err := s.write(ctx, http.MethodPost, "", payload, preferRepresentation, operation)
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[goalRow](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	return goalsToDomain(rows), nil
}

// SetAchieved flips a goal's achieved flag.
func (s *GoalStore) SetAchieved(ctx context.Context, goalID string, achieved bool) error {
	query := "id=eq." + url.QueryEscape(goalID)
	payload := map[string]bool{"is_achieved": achieved}

	body, err := s.write(ctx, http.MethodPatch, query, payload, "", "set goal achieved "+strconv.FormatBool(achieved))
	if err != nil {
		return err
	}
	discard(body)

	return nil
}
