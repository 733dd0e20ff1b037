package supabase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/ports"
)

// subscriptionsTable is the subscriptions table name.
const subscriptionsTable = "subscriptions"

var _ ports.SubscriptionStore = (*SubscriptionStore)(nil)

// SubscriptionStore implements ports.SubscriptionStore on the
// subscriptions table. One row per user.
type SubscriptionStore struct {
	table
}

// NewSubscriptionStore creates a subscription store. Panics if cfg.Client is nil.
func NewSubscriptionStore(cfg StoreConfig) *SubscriptionStore {
	return &SubscriptionStore{table: newTable(cfg, subscriptionsTable)}
}

// subscriptionRow is the subscriptions column shape.
type subscriptionRow struct {
	UserID string `json:"user_id"`
	Tier   string `json:"tier"`
}

// GetTier returns the user's stored tier. Returns domain.ErrNotFound
// when the user has no subscription row.
func (s *SubscriptionStore) GetTier(ctx context.Context, userID string) (domain.Tier, error) {
	query := "user_id=eq." + url.QueryEscape(userID) + "&limit=1"

	body, err := s.get(ctx, query, "get subscription")
	if err != nil {
		return domain.TierBasic, err
	}

	rows, err := decodeRows[subscriptionRow](body)
	if err != nil {
		return domain.TierBasic, domain.NewUnavailableError(serviceName, err.Error())
	}

	if len(rows) == 0 {
		return domain.TierBasic, domain.NewNotFoundError("subscription", userID)
	}

	tier, err := domain.ParseTier(rows[0].Tier)
	if err != nil {
		// A row with a tier this build does not know is data from a
		// newer deployment; surface it rather than guessing.
		return domain.TierBasic, err
	}

	return tier, nil
}

// Upsert writes the user's tier, inserting or replacing the single row.
func (s *SubscriptionStore) Upsert(ctx context.Context, userID string, tier domain.Tier) error {
	payload := subscriptionRow{UserID: userID, Tier: tier.String()}

	body, err := s.write(ctx, http.MethodPost, "on_conflict=user_id", payload, preferUpsert, "upsert subscription")
	if err != nil {
		return err
	}
	discard(body)

	return nil
}
