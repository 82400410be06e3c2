package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/service"
	"github.com/kbajaj/emissions-backend-go/pkg/response"
)

// FlowHandler handles HTTP requests for bilateral flows and trade partners
type FlowHandler struct {
	flows *service.FlowService
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(flows *service.FlowService) *FlowHandler {
	return &FlowHandler{flows: flows}
}

// GetFlows handles GET /api/v1/flows
func (h *FlowHandler) GetFlows(c *gin.Context) {
	var filter models.FlowFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid flow parameters")
		return
	}

	flows, err := h.flows.Flows(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, flows)
}

// GetPartners handles GET /api/v1/partners/:iso3
func (h *FlowHandler) GetPartners(c *gin.Context) {
	var filter models.PartnerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid partner parameters")
		return
	}

	partners, err := h.flows.Partners(c.Request.Context(), c.Param("iso3"), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, partners)
}
