package ports

import (
	"context"
)

// CompletionRequest is a single-turn request to the completion service.
type CompletionRequest struct {
	// Model identifies which model serves the request. Empty means the
	// adapter's configured default.
	Model string

	// System is the system instruction framing the task.
	System string

	// User is the user message, typically embedding journal context.
	User string
}

// CompletionClient calls an external large-language-model API for a
// single text completion.
//
// Implementations must:
//   - respect context deadlines and cancellation
//   - return domain.ErrUnavailable for transport/auth/rate-limit failures
//   - return domain.ErrMalformedCompletion when the API responds 2xx but
//     the payload carries no completion text
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// BillingSubscription is the slice of a payment-provider subscription
// this service cares about.
type BillingSubscription struct {
	ID      string
	PriceID string
	Status  string
}

// BillingClient looks up subscription state at the payment provider.
// Used only by the billing sync path, never by the tagging pipeline.
type BillingClient interface {
	// ActiveSubscription returns the customer's active subscription, or
	// (nil, nil) when the customer has none.
	ActiveSubscription(ctx context.Context, email string) (*BillingSubscription, error)
}

// Event is a domain event forwarded to external consumers.
type Event struct {
	// Type is the event type identifier, e.g. "entry.tagged".
	Type string `json:"type"`

	// UserID is the user the event concerns.
	UserID string `json:"user_id"`

	// Payload is the event body for serialization.
	Payload any `json:"payload"`
}

// EventPublisher forwards domain events to external consumers
// (webhook endpoints, CRM sync, and the like). Publishing is
// best-effort from the pipeline's perspective: callers log failures
// and move on.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
