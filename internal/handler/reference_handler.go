package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kbajaj/emissions-backend-go/internal/service"
	"github.com/kbajaj/emissions-backend-go/pkg/response"
)

// ReferenceHandler handles HTTP requests for reference data and dataset status
type ReferenceHandler struct {
	reference *service.ReferenceService
	datasets  *service.DatasetService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(reference *service.ReferenceService, datasets *service.DatasetService) *ReferenceHandler {
	return &ReferenceHandler{reference: reference, datasets: datasets}
}

// GetFactors handles GET /api/v1/factors/:commodity
func (h *ReferenceHandler) GetFactors(c *gin.Context) {
	modes, found, err := h.reference.Factors(c.Request.Context(), c.Param("commodity"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "No transport factors for commodity")
		return
	}

	response.Success(c, modes)
}

// GetCountries handles GET /api/v1/meta/countries
func (h *ReferenceHandler) GetCountries(c *gin.Context) {
	countries, err := h.reference.Countries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, countries)
}

// GetDropdowns handles GET /api/v1/meta/dropdowns
func (h *ReferenceHandler) GetDropdowns(c *gin.Context) {
	lists, err := h.reference.Dropdowns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, lists)
}

// GetGlobalTimeseries handles GET /api/v1/global/timeseries
func (h *ReferenceHandler) GetGlobalTimeseries(c *gin.Context) {
	series, err := h.reference.GlobalTimeseries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, series)
}

// GetGlobalByMode handles GET /api/v1/global/modes
func (h *ReferenceHandler) GetGlobalByMode(c *gin.Context) {
	breakdown, err := h.reference.GlobalByMode(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, breakdown)
}

// GetDatasetStatuses handles GET /api/v1/datasets
func (h *ReferenceHandler) GetDatasetStatuses(c *gin.Context) {
	response.Success(c, h.datasets.Statuses())
}
