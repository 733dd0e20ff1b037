package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/journiq/journiq-server/internal/adapters/http/middleware"
	"github.com/journiq/journiq-server/internal/app"
	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authedContext builds a gin test context carrying an authenticated
// identity, matching what RequireIdentity sets in production.
func authedContext(t *testing.T, w *httptest.ResponseRecorder, method, target, body string) *gin.Context {
	t.Helper()

	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	c.Request = httptest.NewRequest(method, target, reader)
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}

	c.Set(middleware.ContextKeyIdentity, &middleware.Identity{
		Subject: "user-1",
		Email:   "user@example.com",
	})

	return c
}

type aiHandlerMocks struct {
	entries       *mocks.MockEntryStore
	goals         *mocks.MockGoalStore
	subscriptions *mocks.MockSubscriptionStore
	completion    *mocks.MockCompletionClient
}

func newAIHandler(t *testing.T) (*AIHandler, aiHandlerMocks) {
	t.Helper()

	m := aiHandlerMocks{
		entries:       mocks.NewMockEntryStore(t),
		goals:         mocks.NewMockGoalStore(t),
		subscriptions: mocks.NewMockSubscriptionStore(t),
		completion:    mocks.NewMockCompletionClient(t),
	}

	tagger := app.NewTaggingService(app.TaggingServiceConfig{
		Completion: m.completion,
		Logger:     discardLogger(),
	})
	subscriptions := app.NewSubscriptionService(app.SubscriptionServiceConfig{
		Store:  m.subscriptions,
		Logger: discardLogger(),
	})

	handler := NewAIHandler(AIHandlerConfig{
		Tagger:        tagger,
		Subscriptions: subscriptions,
		Goals: app.NewGoalService(app.GoalServiceConfig{
			Entries:    m.entries,
			Goals:      m.goals,
			Completion: m.completion,
			Logger:     discardLogger(),
		}),
		Insights: app.NewInsightService(app.InsightServiceConfig{
			Entries:    m.entries,
			Completion: m.completion,
			Logger:     discardLogger(),
		}),
		Prompts: app.NewPromptService(app.PromptServiceConfig{
			Goals:      m.goals,
			Completion: m.completion,
			Logger:     discardLogger(),
		}),
		Backfill: app.NewBackfillService(app.BackfillServiceConfig{
			Entries:       m.entries,
			Tagger:        tagger,
			Subscriptions: subscriptions,
			Logger:        discardLogger(),
		}),
	})

	return handler, m
}

func TestAIHandler_TagEntry(t *testing.T) {
	t.Run("tier override skips tier resolution", func(t *testing.T) {
		handler, m := newAIHandler(t)

		m.completion.EXPECT().
			Complete(mock.Anything, mock.Anything).
			Return("Title: Morning Run\nCategory: Health\nTags: running, fitness", nil).
			Once()

		w := httptest.NewRecorder()
		c := authedContext(t, w, http.MethodPost, "/api/v1/ai/tag-entry",
			`{"content": "Went for a run.", "tier": "pro"}`)

		handler.TagEntry(c)

		require.Equal(t, http.StatusOK, w.Code)

		var resp TagEntryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Morning Run", resp.Title)
		assert.Equal(t, "Health", resp.Category)
		assert.Equal(t, []string{"running", "fitness"}, resp.Tags)

		m.subscriptions.AssertNotCalled(t, "GetTier")
	})

	t.Run("without override the stored tier is resolved", func(t *testing.T) {
		handler, m := newAIHandler(t)

		m.subscriptions.EXPECT().
			GetTier(mock.Anything, "user-1").
			Return(domain.TierBasic, nil).
			Once()

		w := httptest.NewRecorder()
		c := authedContext(t, w, http.MethodPost, "/api/v1/ai/tag-entry",
			`{"content": "Went for a run."}`)

		handler.TagEntry(c)

		require.Equal(t, http.StatusOK, w.Code)

		var resp TagEntryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.DefaultTitle, resp.Title)
		assert.Equal(t, domain.DefaultCategory, resp.Category)

		m.completion.AssertNotCalled(t, "Complete")
	})

	t.Run("missing content", func(t *testing.T) {
		handler, _ := newAIHandler(t)

		w := httptest.NewRecorder()
		c := authedContext(t, w, http.MethodPost, "/api/v1/ai/tag-entry", `{}`)

		handler.TagEntry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("whitespace content", func(t *testing.T) {
		handler, _ := newAIHandler(t)

		w := httptest.NewRecorder()
		c := authedContext(t, w, http.MethodPost, "/api/v1/ai/tag-entry",
			`{"content": "   "}`)

		handler.TagEntry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown tier override", func(t *testing.T) {
		handler, _ := newAIHandler(t)

		w := httptest.NewRecorder()
		c := authedContext(t, w, http.MethodPost, "/api/v1/ai/tag-entry",
			`{"content": "Went for a run.", "tier": "platinum"}`)

		handler.TagEntry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("completion failure maps to service unavailable", func(t *testing.T) {
		handler, m := newAIHandler(t)

		m.completion.EXPECT().
			Complete(mock.Anything, mock.Anything).
			Return("", domain.NewUnavailableError("completion-service", "timeout")).
			Once()

		w := httptest.NewRecorder()
		c := authedContext(t, w, http.MethodPost, "/api/v1/ai/tag-entry",
			`{"content": "Went for a run.", "tier": "plus"}`)

		handler.TagEntry(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestAIHandler_GenerateGoals(t *testing.T) {
	handler, m := newAIHandler(t)

	m.entries.EXPECT().
		ListRecent(mock.Anything, "user-1", 10).
		Return([]domain.JournalEntry{{Content: "Trained hard."}}, nil).
		Once()
	m.goals.EXPECT().
		ListOpen(mock.Anything, "user-1").
		Return(nil, nil).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return(`["Stretch daily", "Sign up for a race"]`, nil).
		Once()
	m.goals.EXPECT().
		InsertBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []domain.Goal) ([]domain.Goal, error) {
			return batch, nil
		}).
		Once()

	w := httptest.NewRecorder()
	c := authedContext(t, w, http.MethodPost, "/api/v1/ai/goals", "")

	handler.GenerateGoals(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateGoalsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Goals, 2)
	assert.Equal(t, "Stretch daily", resp.Goals[0].Content)
	assert.True(t, resp.Goals[0].IsAIGenerated)
}

func TestAIHandler_GenerateGoals_MalformedCompletion(t *testing.T) {
	handler, m := newAIHandler(t)

	m.entries.EXPECT().
		ListRecent(mock.Anything, "user-1", 10).
		Return(nil, nil).
		Once()
	m.goals.EXPECT().
		ListOpen(mock.Anything, "user-1").
		Return(nil, nil).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("Here are some goals for you!", nil).
		Once()

	w := httptest.NewRecorder()
	c := authedContext(t, w, http.MethodPost, "/api/v1/ai/goals", "")

	handler.GenerateGoals(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "UPSTREAM_ERROR")
}

func TestAIHandler_GenerateInsights(t *testing.T) {
	handler, m := newAIHandler(t)

	m.entries.EXPECT().
		ListRecent(mock.Anything, "user-1", 20).
		Return([]domain.JournalEntry{{Content: "Slept badly."}}, nil).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("You mention sleep often.", nil).
		Once()

	w := httptest.NewRecorder()
	c := authedContext(t, w, http.MethodPost, "/api/v1/ai/insights", "")

	handler.GenerateInsights(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateInsightsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "You mention sleep often.", resp.Insights)
}

func TestAIHandler_GeneratePrompt(t *testing.T) {
	handler, m := newAIHandler(t)

	m.goals.EXPECT().
		ListOpen(mock.Anything, "user-1").
		Return(nil, nil).
		Once()
	m.completion.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("What are you grateful for today?", nil).
		Once()

	w := httptest.NewRecorder()
	c := authedContext(t, w, http.MethodPost, "/api/v1/ai/prompt", "")

	handler.GeneratePrompt(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp GeneratePromptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Prompt)
}

func TestAIHandler_Backfill(t *testing.T) {
	handler, m := newAIHandler(t)

	m.subscriptions.EXPECT().
		GetTier(mock.Anything, "user-1").
		Return(domain.TierBasic, nil).
		Once()

	w := httptest.NewRecorder()
	c := authedContext(t, w, http.MethodPost, "/api/v1/ai/backfill", "")

	handler.Backfill(c)

	require.Equal(t, http.StatusOK, w.Code)

	var report app.BackfillReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.False(t, report.Eligible)
}
