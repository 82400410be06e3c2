package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/service"
	"github.com/kbajaj/emissions-backend-go/pkg/response"
)

// SeriesHandler handles HTTP requests for entity time series
type SeriesHandler struct {
	emissions *service.EmissionsService
}

// NewSeriesHandler creates a new series handler
func NewSeriesHandler(emissions *service.EmissionsService) *SeriesHandler {
	return &SeriesHandler{emissions: emissions}
}

// GetSeries handles GET /api/v1/series/:dataset/:entity
func (h *SeriesHandler) GetSeries(c *gin.Context) {
	var filter models.SeriesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid series parameters")
		return
	}

	series, err := h.emissions.Series(c.Request.Context(), c.Param("dataset"), c.Param("entity"), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, series)
}

// respondError maps service errors onto the response taxonomy: permanent
// dataset failures are 502, everything else is a caller error.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrDatasetUnavailable) {
		response.BadGateway(c, err.Error())
		return
	}
	response.BadRequest(c, err.Error())
}
