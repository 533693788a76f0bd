package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoquest/internal/models/request_models"
	"ecoquest/internal/services"
	"ecoquest/pkg/utils"
)

type RewardController struct {
	svc services.RewardService
}

func NewRewardController(svc services.RewardService) *RewardController {
	return &RewardController{svc: svc}
}

// ListRewards godoc
// @Summary List rewards
// @Tags Rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /rewards [get]
func (h *RewardController) ListRewards(c *gin.Context) {
	rewards, err := h.svc.ListRewards(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rewards, "")
}

// CreateReward godoc
// @Summary Create a reward
// @Tags Rewards
// @Accept json
// @Produce json
// @Param request body request_models.RewardRequest true "Reward payload"
// @Security BearerAuth
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /rewards [post]
func (h *RewardController) CreateReward(c *gin.Context) {
	var req request_models.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reward, err := h.svc.CreateReward(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, reward, "Reward created")
}

// UpdateReward godoc
// @Summary Update a reward
// @Tags Rewards
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param request body request_models.RewardRequest true "Reward payload"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /rewards/{id} [put]
func (h *RewardController) UpdateReward(c *gin.Context) {
	var req request_models.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reward, err := h.svc.UpdateReward(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reward, "Reward updated")
}

// DeleteReward godoc
// @Summary Delete a reward
// @Tags Rewards
// @Produce json
// @Param id path string true "Reward ID"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /rewards/{id} [delete]
func (h *RewardController) DeleteReward(c *gin.Context) {
	if err := h.svc.DeleteReward(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Reward deleted")
}
