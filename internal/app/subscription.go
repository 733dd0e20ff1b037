package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/platform/logging"
	"github.com/journiq/journiq-server/internal/ports"
)

// SubscriptionService resolves a user's subscription tier and keeps the
// local subscription record in step with the payment provider.
type SubscriptionService struct {
	store   ports.SubscriptionStore
	billing ports.BillingClient
	// priceTiers maps payment-provider price IDs to tier names.
	priceTiers map[string]domain.Tier
	logger     *slog.Logger
}

// SubscriptionServiceConfig contains dependencies for the subscription service.
type SubscriptionServiceConfig struct {
	Store ports.SubscriptionStore

	// Billing is optional; without it SyncFromBilling is unavailable
	// and ResolveTier works purely from the local store.
	Billing ports.BillingClient

	// PriceTiers maps provider price IDs to tier names ("plus", "pro").
	PriceTiers map[string]string

	Logger *slog.Logger
}

// NewSubscriptionService creates a subscription service.
// Panics if Store is nil. Unknown tier names in PriceTiers are skipped
// with a warning rather than rejected.
func NewSubscriptionService(cfg SubscriptionServiceConfig) *SubscriptionService {
	if cfg.Store == nil {
		panic("SubscriptionService: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "app.SubscriptionService"))

	priceTiers := make(map[string]domain.Tier, len(cfg.PriceTiers))

	for priceID, name := range cfg.PriceTiers {
		tier, err := domain.ParseTier(name)
		if err != nil {
			logger.Warn("skipping price mapping with unknown tier",
				slog.String("price_id", priceID),
				slog.String("tier", name),
			)

			continue
		}

		priceTiers[priceID] = tier
	}

	return &SubscriptionService{
		store:      cfg.Store,
		billing:    cfg.Billing,
		priceTiers: priceTiers,
		logger:     logger,
	}
}

// ResolveTier returns the user's current tier. A missing subscription
// row or a failed lookup both resolve to basic: tier resolution must
// never block a feature behind an error, only behind a missing
// entitlement.
func (s *SubscriptionService) ResolveTier(ctx context.Context, userID string) domain.Tier {
	tier, err := s.store.GetTier(ctx, userID)
	if err != nil {
		if !domain.IsNotFound(err) {
			logging.FromContext(ctx).WarnContext(ctx, "tier lookup failed, defaulting to basic",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}

		return domain.TierBasic
	}

	return tier
}

// SyncFromBilling queries the payment provider for the customer's
// active subscription, maps its price to a tier, and upserts the local
// subscription row. A customer with no active subscription maps to
// basic, as does an unrecognized price.
func (s *SubscriptionService) SyncFromBilling(ctx context.Context, userID, email string) (domain.Tier, error) {
	if s.billing == nil {
		return domain.TierBasic, domain.NewUnavailableError("billing", "no billing client configured")
	}

	if email == "" {
		return domain.TierBasic, domain.NewValidationError("email", "must not be empty")
	}

	sub, err := s.billing.ActiveSubscription(ctx, email)
	if err != nil {
		return domain.TierBasic, fmt.Errorf("querying billing provider: %w", err)
	}

	tier := domain.TierBasic

	if sub != nil {
		mapped, ok := s.priceTiers[sub.PriceID]
		if !ok {
			logging.FromContext(ctx).WarnContext(ctx, "active subscription with unmapped price",
				slog.String("price_id", sub.PriceID),
			)
		} else {
			tier = mapped
		}
	}

	if err := s.store.Upsert(ctx, userID, tier); err != nil {
		return domain.TierBasic, fmt.Errorf("recording subscription tier: %w", err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "subscription synced",
		slog.String("user_id", userID),
		slog.String("tier", tier.String()),
	)

	return tier, nil
}
