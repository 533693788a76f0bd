package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoquest/internal/models/request_models"
	"ecoquest/internal/services"
	"ecoquest/pkg/utils"
)

type TrashBinController struct {
	svc services.TrashBinService
}

func NewTrashBinController(svc services.TrashBinService) *TrashBinController {
	return &TrashBinController{svc: svc}
}

// ListTrashBins godoc
// @Summary List trash bins
// @Tags TrashBins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /trash-bins [get]
func (h *TrashBinController) ListTrashBins(c *gin.Context) {
	bins, err := h.svc.ListTrashBins(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bins, "")
}

// CreateTrashBin godoc
// @Summary Register a trash bin
// @Description Coordinates may be strings or numbers; a blank bin_code becomes BIN-<epoch ms>
// @Tags TrashBins
// @Accept json
// @Produce json
// @Param request body request_models.TrashBinRequest true "Trash bin payload"
// @Security BearerAuth
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trash-bins [post]
func (h *TrashBinController) CreateTrashBin(c *gin.Context) {
	var req request_models.TrashBinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bin, err := h.svc.CreateTrashBin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, bin, "Trash bin created")
}

// DeleteTrashBin godoc
// @Summary Delete a trash bin
// @Tags TrashBins
// @Produce json
// @Param id path string true "Trash bin ID"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /trash-bins/{id} [delete]
func (h *TrashBinController) DeleteTrashBin(c *gin.Context) {
	if err := h.svc.DeleteTrashBin(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trash bin deleted")
}
