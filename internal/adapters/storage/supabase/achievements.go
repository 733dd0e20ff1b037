package supabase

import (
	"context"
	"net/url"
	"time"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/ports"
)

// achievementsTable is the achievements table name.
const achievementsTable = "achievements"

var _ ports.AchievementStore = (*AchievementStore)(nil)

// AchievementStore implements ports.AchievementStore on the
// achievements table. Read-only; badges are awarded elsewhere.
type AchievementStore struct {
	table
}

// NewAchievementStore creates an achievement store. Panics if cfg.Client is nil.
func NewAchievementStore(cfg StoreConfig) *AchievementStore {
	return &AchievementStore{table: newTable(cfg, achievementsTable)}
}

// achievementRow is the achievements column shape.
type achievementRow struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	BadgeType  string    `json:"badge_type"`
	AchievedAt time.Time `json:"achieved_at"`
}

// ListByUser returns the user's achievements, newest first.
func (s *AchievementStore) ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error) {
	query := "user_id=eq." + url.QueryEscape(userID) + "&order=achieved_at.desc"

	body, err := s.get(ctx, query, "list achievements")
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows[achievementRow](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	achievements := make([]domain.Achievement, 0, len(rows))
	for i := range rows {
		achievements = append(achievements, domain.Achievement{
			ID:         rows[i].ID,
			UserID:     rows[i].UserID,
			BadgeType:  rows[i].BadgeType,
			AchievedAt: rows[i].AchievedAt,
		})
	}

	return achievements, nil
}
