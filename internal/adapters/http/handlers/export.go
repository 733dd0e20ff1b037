package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/journiq/journiq-server/internal/adapters/http/dto"
	"github.com/journiq/journiq-server/internal/adapters/http/middleware"
	"github.com/journiq/journiq-server/internal/app"
)

// ExportHandler handles the user data export endpoint.
type ExportHandler struct {
	service *app.ExportService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(service *app.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// Export handles GET /api/v1/export.
// Returns everything stored for the caller in one document.
func (h *ExportHandler) Export(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	export, err := h.service.Export(c.Request.Context(), identity.Subject)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="journiq-export.json"`)
	c.JSON(http.StatusOK, export)
}

// RegisterExportRoutes registers the export route on the given router group.
func (h *ExportHandler) RegisterExportRoutes(rg *gin.RouterGroup) {
	rg.GET("/export", h.Export)
}
