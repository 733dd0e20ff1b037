//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journiq/journiq-server/internal/adapters/clients"
	"github.com/journiq/journiq-server/internal/adapters/clients/acl"
	"github.com/journiq/journiq-server/internal/adapters/storage/supabase"
	"github.com/journiq/journiq-server/internal/app"
	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/platform/config"
	"github.com/journiq/journiq-server/internal/ports"
)

// testAdapterConfig returns a config suitable for adapter integration testing.
func testAdapterConfig(serviceName, baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: serviceName,
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 2,
		},
	}
}

func newTestClient(t *testing.T, serviceName, baseURL string) *clients.Client {
	t.Helper()

	client, err := clients.New(testAdapterConfig(serviceName, baseURL))
	require.NoError(t, err)

	return client
}

// TestCompletionClient_Complete_Integration verifies the full flow of a
// completion request through the adapter against a chat-shaped API.
func TestCompletionClient_Complete_Integration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var payload struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4o-mini", payload.Model)
		require.Len(t, payload.Messages, 2)
		assert.Equal(t, "system", payload.Messages[0].Role)
		assert.Equal(t, "user", payload.Messages[1].Role)
		assert.Contains(t, payload.Messages[1].Content, "Ran ten kilometers")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [
				{"message": {"role": "assistant", "content": "Category: Health\nTags: running, exercise"}}
			]
		}`))
	}))
	defer server.Close()

	adapter := acl.NewCompletionClient(acl.CompletionClientConfig{
		Client:       newTestClient(t, "completion-service", server.URL),
		DefaultModel: "gpt-4o-mini",
	})

	text, err := adapter.Complete(context.Background(), ports.CompletionRequest{
		System: "You analyze journal entries.",
		User:   "Ran ten kilometers before breakfast.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Category: Health\nTags: running, exercise", text)
}

// TestCompletionClient_EmptyChoices verifies that a structurally valid
// response with no choices maps to a malformed-completion error.
func TestCompletionClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	adapter := acl.NewCompletionClient(acl.CompletionClientConfig{
		Client: newTestClient(t, "completion-service", server.URL),
	})

	_, err := adapter.Complete(context.Background(), ports.CompletionRequest{User: "anything"})

	require.Error(t, err)
	assert.True(t, domain.IsMalformedCompletion(err), "expected MalformedCompletionError")
}

// TestCompletionClient_UpstreamAuthFailure verifies that a 401 from the
// completion API surfaces as unavailability, never as the caller's
// authentication failure.
func TestCompletionClient_UpstreamAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"code": "invalid_api_key", "message": "Incorrect API key provided"}}`))
	}))
	defer server.Close()

	cfg := testAdapterConfig("completion-service", server.URL)
	cfg.Retry.MaxAttempts = 1

	client, err := clients.New(cfg)
	require.NoError(t, err)

	adapter := acl.NewCompletionClient(acl.CompletionClientConfig{Client: client})

	_, err = adapter.Complete(context.Background(), ports.CompletionRequest{User: "anything"})

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected UnavailableError")
	assert.False(t, domain.IsUnauthenticated(err), "upstream credential failure must not look like caller auth failure")
}

// TestCompletionClient_CircuitOpen verifies that circuit breaker open
// state is correctly mapped to an unavailability error.
func TestCompletionClient_CircuitOpen(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testAdapterConfig("completion-service", server.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.Circuit.MaxFailures = 2

	client, err := clients.New(cfg)
	require.NoError(t, err)

	adapter := acl.NewCompletionClient(acl.CompletionClientConfig{Client: client})

	// Trip the circuit breaker
	_, _ = adapter.Complete(context.Background(), ports.CompletionRequest{User: "one"})
	_, _ = adapter.Complete(context.Background(), ports.CompletionRequest{User: "two"})

	// This call should fail fast with circuit open
	callsBefore := atomic.LoadInt32(&calls)
	_, err = adapter.Complete(context.Background(), ports.CompletionRequest{User: "three"})

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected UnavailableError")
	assert.Contains(t, err.Error(), "circuit breaker open")
	assert.Equal(t, callsBefore, atomic.LoadInt32(&calls), "no server call when circuit is open")
}

// TestBillingClient_ActiveSubscription_Integration verifies the two-hop
// customer-then-subscription lookup against a Stripe-shaped API.
func TestBillingClient_ActiveSubscription_Integration(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/customers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pro@example.com", r.URL.Query().Get("email"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"id": "cus_123"}]}`))
	})
	mux.HandleFunc("/v1/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cus_123", r.URL.Query().Get("customer"))
		assert.Equal(t, "active", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "sub_456",
					"status": "active",
					"items": {"data": [{"price": {"id": "price_pro_monthly"}}]}
				}
			]
		}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	adapter := acl.NewBillingClient(acl.BillingClientConfig{
		Client: newTestClient(t, "billing-service", server.URL),
	})

	sub, err := adapter.ActiveSubscription(context.Background(), "pro@example.com")

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "sub_456", sub.ID)
	assert.Equal(t, "price_pro_monthly", sub.PriceID)
	assert.Equal(t, "active", sub.Status)
}

// TestBillingClient_NoCustomer verifies that an unknown email yields no
// subscription and no error.
func TestBillingClient_NoCustomer(t *testing.T) {
	var subscriptionCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/customers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	})
	mux.HandleFunc("/v1/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&subscriptionCalls, 1)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	adapter := acl.NewBillingClient(acl.BillingClientConfig{
		Client: newTestClient(t, "billing-service", server.URL),
	})

	sub, err := adapter.ActiveSubscription(context.Background(), "stranger@example.com")

	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Zero(t, atomic.LoadInt32(&subscriptionCalls), "no subscription lookup without a customer")
}

// TestBillingClient_EmptyEmail verifies that invalid input is rejected
// before making network calls.
func TestBillingClient_EmptyEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called for invalid input")
	}))
	defer server.Close()

	adapter := acl.NewBillingClient(acl.BillingClientConfig{
		Client: newTestClient(t, "billing-service", server.URL),
	})

	_, err := adapter.ActiveSubscription(context.Background(), "")

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "expected ValidationError")
}

// TestWebhookPublisher_Publish_Integration verifies event delivery to a
// configured webhook endpoint.
func TestWebhookPublisher_Publish_Integration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hooks/journiq", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var event struct {
			Type   string `json:"type"`
			UserID string `json:"user_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		assert.Equal(t, "entry.tagged", event.Type)
		assert.Equal(t, "user-1", event.UserID)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	publisher := acl.NewWebhookPublisher(acl.WebhookPublisherConfig{
		Client: newTestClient(t, "webhook-sink", server.URL),
		Path:   "/hooks/journiq",
	})

	err := publisher.Publish(context.Background(), ports.Event{
		Type:   "entry.tagged",
		UserID: "user-1",
		Payload: map[string]string{
			"entry_id": "e1",
		},
	})

	require.NoError(t, err)
}

// TestTaggingPipeline_EndToEnd drives a real entry creation through the
// whole stack: subscription lookup and entry persistence against a
// PostgREST-shaped server, tagging against a chat-shaped completion
// server, with only the HTTP edges faked.
func TestTaggingPipeline_EndToEnd(t *testing.T) {
	completion := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [
				{"message": {"role": "assistant", "content": "Title: Marathon Triumph\nCategory: Fitness\nTags: running, race"}}
			]
		}`))
	}))
	defer completion.Close()

	database := http.NewServeMux()
	database.HandleFunc("/rest/v1/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.user-1", r.URL.Query().Get("user_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"user_id": "user-1", "tier": "pro"}]`))
	})
	database.HandleFunc("/rest/v1/journal_entries", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var row map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		assert.Equal(t, "Marathon Triumph", row["title"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{
			"id": "e1",
			"user_id": "user-1",
			"title": "Marathon Triumph",
			"content": "Finished my first marathon today.",
			"category": "Fitness",
			"tags": ["running", "race"],
			"created_at": "2024-06-15T14:30:00Z",
			"updated_at": "2024-06-15T14:30:00Z"
		}]`))
	})

	dbServer := httptest.NewServer(database)
	defer dbServer.Close()

	storeCfg := supabase.StoreConfig{Client: newTestClient(t, "supabase", dbServer.URL)}

	tagger := app.NewTaggingService(app.TaggingServiceConfig{
		Completion: acl.NewCompletionClient(acl.CompletionClientConfig{
			Client:       newTestClient(t, "completion-service", completion.URL),
			DefaultModel: "gpt-4o-mini",
		}),
	})
	subscriptions := app.NewSubscriptionService(app.SubscriptionServiceConfig{
		Store: supabase.NewSubscriptionStore(storeCfg),
	})
	entries := app.NewEntryService(app.EntryServiceConfig{
		Entries:       supabase.NewEntryStore(storeCfg),
		Tagger:        tagger,
		Subscriptions: subscriptions,
	})

	entry, err := entries.Create(context.Background(), "user-1", "my race", "Finished my first marathon today.")

	require.NoError(t, err)
	assert.Equal(t, "e1", entry.ID)
	assert.Equal(t, "Marathon Triumph", entry.Title)
	assert.Equal(t, "Fitness", entry.Category)
	assert.Equal(t, []string{"running", "race"}, entry.Tags)
}
