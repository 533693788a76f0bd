package controllers

import (
	"github.com/gin-gonic/gin"

	"ecoquest/internal/services"
	"ecoquest/pkg/utils"
)

type DashboardController struct {
	svc services.DashboardService
}

func NewDashboardController(svc services.DashboardService) *DashboardController {
	return &DashboardController{svc: svc}
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Totals plus earned points and new users for each of the last seven days
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /dashboard/stats [get]
func (h *DashboardController) GetStats(c *gin.Context) {
	report, err := h.svc.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}
