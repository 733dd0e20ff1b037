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

// EntryHandler handles journal entry HTTP endpoints.
type EntryHandler struct {
	service *app.EntryService
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(service *app.EntryService) *EntryHandler {
	return &EntryHandler{
		service: service,
	}
}

// CreateEntryRequest is the request body for POST /api/v1/entries.
type CreateEntryRequest struct {
	// Title is optional; the tagging pipeline fills one in when the
	// tier allows and the user left it blank.
	Title string `json:"title"`

	// Content is the journal text.
	Content string `json:"content" binding:"required"`
}

// EntryResponse is the HTTP response structure for a journal entry.
type EntryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// toEntryResponse converts a domain entry to an HTTP response.
func toEntryResponse(e *domain.JournalEntry) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Category:  e.Category,
		Tags:      e.Tags,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// CreateEntry handles POST /api/v1/entries.
// Persists the entry after running it through the tagging pipeline.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req CreateEntryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	entry, err := h.service.Create(c.Request.Context(), identity.Subject, req.Title, req.Content)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// ListEntriesResponse is the response for GET /api/v1/entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ListEntries handles GET /api/v1/entries?limit=N.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			dto.HandleError(c, domain.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.service.List(c.Request.Context(), identity.Subject, limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := ListEntriesResponse{Entries: make([]EntryResponse, 0, len(entries))}
	for i := range entries {
		resp.Entries = append(resp.Entries, *toEntryResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// GetEntry handles GET /api/v1/entries/:id.
func (h *EntryHandler) GetEntry(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	entry, err := h.service.Get(c.Request.Context(), identity.Subject, c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEntryResponse(entry))
}

// RegisterEntryRoutes registers entry routes on the given router group.
func (h *EntryHandler) RegisterEntryRoutes(rg *gin.RouterGroup) {
	entries := rg.Group("/entries")
	entries.POST("", h.CreateEntry)
	entries.GET("", h.ListEntries)
	entries.GET("/:id", h.GetEntry)
}
