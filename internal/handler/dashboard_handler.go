package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/primehood/supplies-api/internal/service"
	"github.com/primehood/supplies-api/internal/utils"
)

// DashboardHandler serves the admin dashboard aggregate.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the aggregated dashboard metrics.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to fetch dashboard stats")
		return
	}
	utils.Success(c, 200, "Dashboard stats retrieved successfully", stats)
}
