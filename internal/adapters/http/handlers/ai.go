package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/journiq/journiq-server/internal/adapters/http/dto"
	"github.com/journiq/journiq-server/internal/adapters/http/middleware"
	"github.com/journiq/journiq-server/internal/app"
	"github.com/journiq/journiq-server/internal/domain"
)

// AIHandler handles the AI pipeline HTTP endpoints: tagging, goal,
// insight, and prompt generation, plus the backfill run.
type AIHandler struct {
	tagger        *app.TaggingService
	subscriptions *app.SubscriptionService
	goals         *app.GoalService
	insights      *app.InsightService
	prompts       *app.PromptService
	backfill      *app.BackfillService
}

// AIHandlerConfig contains the services the AI handler dispatches to.
type AIHandlerConfig struct {
	Tagger        *app.TaggingService
	Subscriptions *app.SubscriptionService
	Goals         *app.GoalService
	Insights      *app.InsightService
	Prompts       *app.PromptService
	Backfill      *app.BackfillService
}

// NewAIHandler creates a new AI pipeline handler.
func NewAIHandler(cfg AIHandlerConfig) *AIHandler {
	return &AIHandler{
		tagger:        cfg.Tagger,
		subscriptions: cfg.Subscriptions,
		goals:         cfg.Goals,
		insights:      cfg.Insights,
		prompts:       cfg.Prompts,
		backfill:      cfg.Backfill,
	}
}

// TagEntryRequest is the request body for POST /api/v1/ai/tag-entry.
type TagEntryRequest struct {
	// Content is the journal text to tag.
	Content string `json:"content" binding:"required"`

	// Tier optionally overrides the caller's resolved tier. Used by
	// clients that already know the subscription state.
	Tier string `json:"tier"`
}

// TagEntryResponse is the tagging result returned to the client.
type TagEntryResponse struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// TagEntry handles POST /api/v1/ai/tag-entry.
// Tags content without persisting anything; clients save the entry
// themselves with the returned fields.
func (h *AIHandler) TagEntry(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req TagEntryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		dto.HandleError(c, domain.NewValidationError("content", "must not be empty"))
		return
	}

	var tier domain.Tier
	if req.Tier != "" {
		parsed, err := domain.ParseTier(req.Tier)
		if err != nil {
			dto.HandleError(c, domain.NewValidationError("tier", "unknown tier"))
			return
		}
		tier = parsed
	} else {
		tier = h.subscriptions.ResolveTier(c.Request.Context(), identity.Subject)
	}

	result, err := h.tagger.TagEntry(c.Request.Context(), req.Content, tier)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TagEntryResponse{
		Title:    result.Title,
		Category: result.Category,
		Tags:     result.Tags,
	})
}

// GenerateGoalsResponse is the response for POST /api/v1/ai/goals.
type GenerateGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GenerateGoals handles POST /api/v1/ai/goals.
func (h *AIHandler) GenerateGoals(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	goals, err := h.goals.Generate(c.Request.Context(), identity.Subject)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateGoalsResponse{Goals: toGoalResponses(goals)})
}

// GenerateInsightsResponse is the response for POST /api/v1/ai/insights.
type GenerateInsightsResponse struct {
	Insights string `json:"insights"`
}

// GenerateInsights handles POST /api/v1/ai/insights.
func (h *AIHandler) GenerateInsights(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	insights, err := h.insights.Generate(c.Request.Context(), identity.Subject)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateInsightsResponse{Insights: insights})
}

// GeneratePromptResponse is the response for POST /api/v1/ai/prompt.
type GeneratePromptResponse struct {
	Prompt string `json:"prompt"`
}

// GeneratePrompt handles POST /api/v1/ai/prompt.
func (h *AIHandler) GeneratePrompt(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	prompt, err := h.prompts.Generate(c.Request.Context(), identity.Subject)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeneratePromptResponse{Prompt: prompt})
}

// Backfill handles POST /api/v1/ai/backfill.
// Tags the caller's untagged entries and reports what happened.
func (h *AIHandler) Backfill(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	report, err := h.backfill.Run(c.Request.Context(), identity.Subject)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// RegisterAIRoutes registers AI pipeline routes on the given router group.
func (h *AIHandler) RegisterAIRoutes(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.POST("/tag-entry", h.TagEntry)
	ai.POST("/goals", h.GenerateGoals)
	ai.POST("/insights", h.GenerateInsights)
	ai.POST("/prompt", h.GeneratePrompt)
	ai.POST("/backfill", h.Backfill)
}
