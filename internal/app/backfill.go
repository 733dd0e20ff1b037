package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/platform/logging"
	"github.com/journiq/journiq-server/internal/ports"
)

// BackfillReport summarizes one backfill run.
type BackfillReport struct {
	// Eligible is false when the user's tier gets no AI processing; the
	// run is skipped entirely in that case.
	Eligible bool `json:"eligible"`

	// Processed is the number of entries successfully tagged.
	Processed int `json:"processed"`

	// Failed is the number of entries that could not be tagged or
	// updated. A failed entry is skipped, not retried.
	Failed int `json:"failed"`
}

// BackfillService tags entries that were written before the user
// upgraded to an AI-capable tier (or before tagging existed).
type BackfillService struct {
	entries       ports.EntryStore
	tagger        *TaggingService
	subscriptions *SubscriptionService
	guard         *InflightGuard
	logger        *slog.Logger
}

// BackfillServiceConfig contains dependencies for the backfill service.
type BackfillServiceConfig struct {
	Entries       ports.EntryStore
	Tagger        *TaggingService
	Subscriptions *SubscriptionService
	Guard         *InflightGuard
	Logger        *slog.Logger
}

// NewBackfillService creates a backfill service.
// Panics if Entries, Tagger, or Subscriptions is nil.
func NewBackfillService(cfg BackfillServiceConfig) *BackfillService {
	if cfg.Entries == nil || cfg.Tagger == nil || cfg.Subscriptions == nil {
		panic("BackfillService: Entries, Tagger, and Subscriptions are required")
	}

	guard := cfg.Guard
	if guard == nil {
		guard = NewInflightGuard()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BackfillService{
		entries:       cfg.Entries,
		tagger:        cfg.Tagger,
		subscriptions: cfg.Subscriptions,
		guard:         guard,
		logger:        logger.With(slog.String("component", "app.BackfillService")),
	}
}

// Run tags every untagged entry for the user, sequentially. Per-entry
// failures are logged and skipped so one bad entry does not abort the
// rest of the run. Basic-tier users are not eligible and get an empty
// report.
func (s *BackfillService) Run(ctx context.Context, userID string) (*BackfillReport, error) {
	release, err := s.guard.Acquire(userID, "backfill")
	if err != nil {
		return nil, err
	}
	defer release()

	logger := logging.FromContext(ctx).With(slog.String("user_id", userID))

	tier := s.subscriptions.ResolveTier(ctx, userID)
	if !tier.AtLeast(domain.TierPlus) {
		logger.InfoContext(ctx, "backfill skipped, tier not eligible")

		return &BackfillReport{Eligible: false}, nil
	}

	entries, err := s.entries.ListUntagged(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching untagged entries: %w", err)
	}

	logger.InfoContext(ctx, "backfill started", slog.Int("entries", len(entries)))

	report := &BackfillReport{Eligible: true}
	policy := domain.PolicyFor(tier)

	for i := range entries {
		entry := &entries[i]

		result, err := s.tagger.TagEntry(ctx, entry.Content, tier)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("backfill canceled: %w", ctx.Err())
			}

			logger.WarnContext(ctx, "backfill tagging failed",
				slog.String("entry_id", entry.ID),
				slog.Any("error", err),
			)
			report.Failed++

			continue
		}

		// Tiers that don't generate titles keep the entry's existing one.
		if !policy.GeneratesTitle {
			result.Title = entry.Title
		}

		if err := s.entries.ApplyTagging(ctx, entry.ID, result); err != nil {
			logger.WarnContext(ctx, "backfill update failed",
				slog.String("entry_id", entry.ID),
				slog.Any("error", err),
			)
			report.Failed++

			continue
		}

		report.Processed++
	}

	logger.InfoContext(ctx, "backfill finished",
		slog.Int("processed", report.Processed),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}
