package acl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/journiq/journiq-server/internal/adapters/clients"
	"github.com/journiq/journiq-server/internal/domain"
	"github.com/journiq/journiq-server/internal/platform/logging"
	"github.com/journiq/journiq-server/internal/ports"
)

// billingServiceName identifies the payment provider in errors and logs.
const billingServiceName = "billing-service"

// BillingClientConfig contains configuration for the billing client.
type BillingClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the payment provider's API
	// and its AuthFunc should inject the secret key.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// BillingClient implements ports.BillingClient against a Stripe-shaped
// API: customers are looked up by email, then their active subscription
// is read to find the price the tier mapping keys on.
type BillingClient struct {
	BaseAdapter
	logger *slog.Logger
}

// NewBillingClient creates a new billing client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewBillingClient(cfg BillingClientConfig) *BillingClient {
	if cfg.Client == nil {
		panic("BillingClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BillingClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, billingServiceName),
		logger:      logger,
	}
}

// customerList is the external DTO for a customer search.
type customerList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// subscriptionList is the external DTO for a subscription listing.
type subscriptionList struct {
	Data []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Items  struct {
			Data []struct {
				Price struct {
					ID string `json:"id"`
				} `json:"price"`
			} `json:"data"`
		} `json:"items"`
	} `json:"data"`
}

// ActiveSubscription returns the customer's active subscription, or
// (nil, nil) when the customer has none. Implements ports.BillingClient.
func (c *BillingClient) ActiveSubscription(ctx context.Context, email string) (*ports.BillingSubscription, error) {
	if err := ValidateRequired(email, "email"); err != nil {
		return nil, err
	}

	customerID, err := c.lookupCustomer(ctx, email)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		c.logger.DebugContext(ctx, "no billing customer for email")
		return nil, nil
	}

	return c.lookupSubscription(ctx, customerID)
}

func (c *BillingClient) lookupCustomer(ctx context.Context, email string) (string, error) {
	path := "/v1/customers?limit=1&email=" + url.QueryEscape(email)
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", "/v1/customers"))

	body, err := c.Get(ctx, path, "lookup customer")
	if err != nil {
		return "", err
	}

	customers, err := DecodeResponse[customerList](body)
	if err != nil {
		return "", domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	if len(customers.Data) == 0 {
		return "", nil
	}

	return customers.Data[0].ID, nil
}

func (c *BillingClient) lookupSubscription(ctx context.Context, customerID string) (*ports.BillingSubscription, error) {
	path := "/v1/subscriptions?limit=1&status=active&customer=" + url.QueryEscape(customerID)
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", "/v1/subscriptions"))

	body, err := c.Get(ctx, path, "lookup subscription")
	if err != nil {
		return nil, err
	}

	subs, err := DecodeResponse[subscriptionList](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	if len(subs.Data) == 0 {
		return nil, nil
	}

	sub := subs.Data[0]

	var priceID string
	if len(sub.Items.Data) > 0 {
		priceID = sub.Items.Data[0].Price.ID
	}

	return &ports.BillingSubscription{
		ID:      sub.ID,
		PriceID: priceID,
		Status:  sub.Status,
	}, nil
}
