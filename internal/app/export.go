package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/ports"
)

// ExportService assembles a full snapshot of a user's data for
// download. The three collections are independent reads, fetched in
// parallel.
type ExportService struct {
	entries      ports.EntryStore
	goals        ports.GoalStore
	achievements ports.AchievementStore
	logger       *slog.Logger
}

// ExportServiceConfig contains dependencies for the export service.
type ExportServiceConfig struct {
	Entries      ports.EntryStore
	Goals        ports.GoalStore
	Achievements ports.AchievementStore
	Logger       *slog.Logger
}

// NewExportService creates an export service.
// Panics if any store is nil.
func NewExportService(cfg ExportServiceConfig) *ExportService {
	if cfg.Entries == nil || cfg.Goals == nil || cfg.Achievements == nil {
		panic("ExportService: Entries, Goals, and Achievements are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ExportService{
		entries:      cfg.Entries,
		goals:        cfg.Goals,
		achievements: cfg.Achievements,
		logger:       logger.With(slog.String("component", "app.ExportService")),
	}
}

// Export returns every entry, goal, and achievement the user owns.
// Any single fetch failure fails the export; a partial snapshot would
// be worse than none for a data-portability download.
func (s *ExportService) Export(ctx context.Context, userID string) (*domain.Export, error) {
	entries, goals, achievements, err := Parallel3(ctx,
		func(ctx context.Context) ([]domain.JournalEntry, error) {
			// limit <= 0 means unbounded: exports carry everything.
			return s.entries.ListRecent(ctx, userID, 0)
		},
		func(ctx context.Context) ([]domain.Goal, error) {
			return s.goals.List(ctx, userID)
		},
		func(ctx context.Context) ([]domain.Achievement, error) {
			return s.achievements.ListByUser(ctx, userID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("assembling export: %w", err)
	}

	return &domain.Export{
		UserID:       userID,
		Entries:      entries,
		Goals:        goals,
		Achievements: achievements,
		ExportedAt:   time.Now().UTC(),
	}, nil
}
