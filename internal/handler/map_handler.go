package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/service"
	"github.com/kbajaj/emissions-backend-go/pkg/response"
)

// MapHandler handles HTTP requests for choropleth map data
type MapHandler struct {
	emissions *service.EmissionsService
}

// NewMapHandler creates a new map handler
func NewMapHandler(emissions *service.EmissionsService) *MapHandler {
	return &MapHandler{emissions: emissions}
}

// GetChoropleth handles GET /api/v1/map/:dataset
func (h *MapHandler) GetChoropleth(c *gin.Context) {
	var filter models.MapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid map parameters")
		return
	}

	entries, err := h.emissions.ChoroplethMap(c.Request.Context(), c.Param("dataset"), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, entries)
}
