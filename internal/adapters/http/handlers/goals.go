package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/journiq/journiq-server/internal/adapters/http/dto"
	"github.com/journiq/journiq-server/internal/adapters/http/middleware"
	"github.com/journiq/journiq-server/internal/app"
	"github.com/journiq/journiq-server/internal/domain"
)

// GoalHandler handles goal HTTP endpoints.
type GoalHandler struct {
	service *app.GoalService
}

// NewGoalHandler creates a new goal handler.
func NewGoalHandler(service *app.GoalService) *GoalHandler {
	return &GoalHandler{
		service: service,
	}
}

// GoalResponse is the HTTP response structure for a goal.
type GoalResponse struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	IsAchieved    bool      `json:"isAchieved"`
	IsAIGenerated bool      `json:"isAiGenerated"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// toGoalResponses converts domain goals to HTTP responses.
func toGoalResponses(goals []domain.Goal) []GoalResponse {
	resp := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		resp = append(resp, GoalResponse{
			ID:            goals[i].ID,
			Content:       goals[i].Content,
			IsAchieved:    goals[i].IsAchieved,
			IsAIGenerated: goals[i].IsAIGenerated,
			CreatedAt:     goals[i].CreatedAt,
			UpdatedAt:     goals[i].UpdatedAt,
		})
	}

	return resp
}

// CreateGoalRequest is the request body for POST /api/v1/goals.
type CreateGoalRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateGoal handles POST /api/v1/goals. Manual goal entry; never
// touches the completion service.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req CreateGoalRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	goal, err := h.service.Create(c.Request.Context(), identity.Subject, req.Content)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGoalResponses([]domain.Goal{*goal})[0])
}

// ListGoalsResponse is the response for GET /api/v1/goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ListGoals handles GET /api/v1/goals?open=true.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	openOnly := false
	if raw := c.Query("open"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			dto.HandleError(c, domain.NewValidationError("open", "must be a boolean"))
			return
		}
		openOnly = parsed
	}

	goals, err := h.service.List(c.Request.Context(), identity.Subject, openOnly)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListGoalsResponse{Goals: toGoalResponses(goals)})
}

// UpdateGoalRequest is the request body for PATCH /api/v1/goals/:id.
type UpdateGoalRequest struct {
	IsAchieved *bool `json:"isAchieved" binding:"required"`
}

// UpdateGoal handles PATCH /api/v1/goals/:id.
// Toggling the achieved flag is the only mutation goals support.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	var req UpdateGoalRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.SetAchieved(c.Request.Context(), c.Param("id"), *req.IsAchieved); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterGoalRoutes registers goal routes on the given router group.
func (h *GoalHandler) RegisterGoalRoutes(rg *gin.RouterGroup) {
	goals := rg.Group("/goals")
	goals.POST("", h.CreateGoal)
	goals.GET("", h.ListGoals)
	goals.PATCH("/:id", h.UpdateGoal)
}
