package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/mocks"
	"github.com/journiq/journiq-server/internal/ports"
)

type backfillServiceMocks struct {
	entries       *mocks.MockEntryStore
	subscriptions *mocks.MockSubscriptionStore
	completion    *mocks.MockCompletionClient
}

func newBackfillService(t *testing.T, guard *InflightGuard) (*BackfillService, backfillServiceMocks) {
	t.Helper()

	m := backfillServiceMocks{
		entries:       mocks.NewMockEntryStore(t),
		subscriptions: mocks.NewMockSubscriptionStore(t),
		completion:    mocks.NewMockCompletionClient(t),
	}

	svc := NewBackfillService(BackfillServiceConfig{
		Entries: m.entries,
		Tagger: NewTaggingService(TaggingServiceConfig{
			Completion: m.completion,
			Logger:     testLogger(),
		}),
		Subscriptions: NewSubscriptionService(SubscriptionServiceConfig{
			Store:  m.subscriptions,
			Logger: testLogger(),
		}),
		Guard:  guard,
		Logger: testLogger(),
	})

	return svc, m
}

func TestNewBackfillService_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewBackfillService(BackfillServiceConfig{})
	})
}

func TestBackfillService_Run_BasicTierNotEligible(t *testing.T) {
	svc, m := newBackfillService(t, nil)

	m.subscriptions.EXPECT().
		GetTier(mock.Anything, "user-1").
		Return(domain.TierBasic, nil).
		Once()

	report, err := svc.Run(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, report.Eligible)
	assert.Zero(t, report.Processed)

	m.entries.AssertNotCalled(t, "ListUntagged")
}

func TestBackfillService_Run_PlusTierKeepsExistingTitles(t *testing.T) {
	svc, m := newBackfillService(t, nil)

	m.subscriptions.EXPECT().
		GetTier(mock.Anything, "user-1").
		Return(domain.TierPlus, nil).
		Once()
	m.entries.EXPECT().
		ListUntagged(mock.Anything, "user-1").
		Return([]domain.JournalEntry{
			{ID: "e1", Title: "Old Title", Content: "Went for a run."},
		}, nil).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("Title: Generated\nCategory: Health\nTags: running", nil).
		Once()
	m.entries.EXPECT().
		ApplyTagging(mock.Anything, "e1", mock.MatchedBy(func(r *domain.TaggingResult) bool {
			return r.Title == "Old Title" && r.Category == "Health"
		})).
		Return(nil).
		Once()

	report, err := svc.Run(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, report.Eligible)
	assert.Equal(t, 1, report.Processed)
	assert.Zero(t, report.Failed)
}

func TestBackfillService_Run_ProTierAppliesGeneratedTitles(t *testing.T) {
	svc, m := newBackfillService(t, nil)

	m.subscriptions.EXPECT().
		GetTier(mock.Anything, "user-1").
		Return(domain.TierPro, nil).
		Once()
	m.entries.EXPECT().
		ListUntagged(mock.Anything, "user-1").
		Return([]domain.JournalEntry{
			{ID: "e1", Title: domain.DefaultTitle, Content: "Went for a run."},
		}, nil).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("Title: Morning Run\nCategory: Health\nTags: running", nil).
		Once()
	m.entries.EXPECT().
		ApplyTagging(mock.Anything, "e1", mock.MatchedBy(func(r *domain.TaggingResult) bool {
			return r.Title == "Morning Run"
		})).
		Return(nil).
		Once()

	report, err := svc.Run(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
}

func TestBackfillService_Run_PerEntryFailuresAreSkipped(t *testing.T) {
	svc, m := newBackfillService(t, nil)

	m.subscriptions.EXPECT().
		GetTier(mock.Anything, "user-1").
		Return(domain.TierPlus, nil).
		Once()
	m.entries.EXPECT().
		ListUntagged(mock.Anything, "user-1").
		Return([]domain.JournalEntry{
			{ID: "e1", Content: "First."},
			{ID: "e2", Content: "Second."},
			{ID: "e3", Content: "Third."},
		}, nil).
		Once()

	// e1 tags fine, e2's completion fails, e3 tags but its update fails.
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("Category: Personal\nTags: misc", nil).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("", domain.NewUnavailableError("completion-service", "timeout")).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("Category: Personal\nTags: misc", nil).
		Once()

	m.entries.EXPECT().
		ApplyTagging(mock.Anything, "e1", mock.Anything).
		Return(nil).
		Once()
	m.entries.EXPECT().
		ApplyTagging(mock.Anything, "e3", mock.Anything).
		Return(domain.NewUnavailableError("supabase", "down")).
		Once()

	report, err := svc.Run(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 2, report.Failed)
}

func TestBackfillService_Run_ListUntaggedFailure(t *testing.T) {
	svc, m := newBackfillService(t, nil)

	m.subscriptions.EXPECT().
		GetTier(mock.Anything, "user-1").
		Return(domain.TierPlus, nil).
		Once()
	m.entries.EXPECT().
		ListUntagged(mock.Anything, "user-1").
		Return(nil, domain.NewUnavailableError("supabase", "down")).
		Once()

	_, err := svc.Run(context.Background(), "user-1")
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestBackfillService_Run_CanceledContextAborts(t *testing.T) {
	svc, m := newBackfillService(t, nil)

	ctx, cancel := context.WithCancel(context.Background())

	m.subscriptions.EXPECT().
		GetTier(mock.Anything, "user-1").
		Return(domain.TierPlus, nil).
		Once()
	m.entries.EXPECT().
		ListUntagged(mock.Anything, "user-1").
		Return([]domain.JournalEntry{
			{ID: "e1", Content: "First."},
			{ID: "e2", Content: "Second."},
		}, nil).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ ports.CompletionRequest) (string, error) {
			cancel()
			return "", ctx.Err()
		}).
		Once()

	_, err := svc.Run(ctx, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	m.entries.AssertNotCalled(t, "ApplyTagging")
}

func TestBackfillService_Run_ConcurrentCallConflicts(t *testing.T) {
	guard := NewInflightGuard()
	svc, _ := newBackfillService(t, guard)

	release, err := guard.Acquire("user-1", "backfill")
	require.NoError(t, err)
	defer release()

	_, err = svc.Run(context.Background(), "user-1")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}
