package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/service"
	"github.com/kbajaj/emissions-backend-go/pkg/response"
)

// RankingHandler handles HTTP requests for rankings and shares
type RankingHandler struct {
	emissions *service.EmissionsService
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(emissions *service.EmissionsService) *RankingHandler {
	return &RankingHandler{emissions: emissions}
}

// GetRankings handles GET /api/v1/rankings/:dataset
func (h *RankingHandler) GetRankings(c *gin.Context) {
	var filter models.RankingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid ranking parameters")
		return
	}

	ranking, err := h.emissions.Rankings(c.Request.Context(), c.Param("dataset"), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, ranking)
}

// GetRankOf handles GET /api/v1/rankings/:dataset/:entity
func (h *RankingHandler) GetRankOf(c *gin.Context) {
	var filter models.RankingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid ranking parameters")
		return
	}

	position, err := h.emissions.RankOf(c.Request.Context(), c.Param("dataset"), c.Param("entity"), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, position)
}

// GetInternationalShare handles GET /api/v1/share/:dataset
func (h *RankingHandler) GetInternationalShare(c *gin.Context) {
	year := c.Query("year")

	share, err := h.emissions.InternationalShare(c.Request.Context(), c.Param("dataset"), year)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, gin.H{"year": year, "international_share": share})
}
