package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ecoquest/internal/services"
	"ecoquest/pkg/utils"
)

type ScanHistoryController struct {
	svc services.ScanHistoryService
}

func NewScanHistoryController(svc services.ScanHistoryService) *ScanHistoryController {
	return &ScanHistoryController{svc: svc}
}

// ListRecent godoc
// @Summary Recent scans
// @Description Latest earn events across all users, newest first
// @Tags ScanHistory
// @Produce json
// @Param limit query int false "1 to 50, default 50"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /scan-history [get]
func (h *ScanHistoryController) ListRecent(c *gin.Context) {
	limit := 0
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n == 0 {
			utils.HandleServiceError(c, utils.ErrInvalidLimit)
			return
		}
		limit = n
	}

	items, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}
