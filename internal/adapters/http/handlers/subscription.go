package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/journiq/journiq-server/internal/adapters/http/dto"
	"github.com/journiq/journiq-server/internal/adapters/http/middleware"
	"github.com/journiq/journiq-server/internal/app"
)

// SubscriptionHandler handles subscription HTTP endpoints.
type SubscriptionHandler struct {
	service *app.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(service *app.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
	}
}

// SubscriptionResponse is the HTTP response structure for a subscription.
type SubscriptionResponse struct {
	Tier string `json:"tier"`
}

// GetSubscription handles GET /api/v1/subscription.
// Always answers; users without a stored subscription are basic.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	tier := h.service.ResolveTier(c.Request.Context(), identity.Subject)

	c.JSON(http.StatusOK, SubscriptionResponse{Tier: tier.String()})
}

// SyncSubscription handles POST /api/v1/subscription/sync.
// Re-resolves the caller's tier against the payment provider and
// stores the result.
func (h *SubscriptionHandler) SyncSubscription(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	tier, err := h.service.SyncFromBilling(c.Request.Context(), identity.Subject, identity.Email)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubscriptionResponse{Tier: tier.String()})
}

// RegisterSubscriptionRoutes registers subscription routes on the given router group.
func (h *SubscriptionHandler) RegisterSubscriptionRoutes(rg *gin.RouterGroup) {
	sub := rg.Group("/subscription")
	sub.GET("", h.GetSubscription)
	sub.POST("/sync", h.SyncSubscription)
}
