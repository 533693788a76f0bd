package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoquest/internal/models/request_models"
	"ecoquest/internal/services"
	"ecoquest/pkg/utils"
)

type AdminController struct {
	svc services.AdminService
}

func NewAdminController(svc services.AdminService) *AdminController {
	return &AdminController{svc: svc}
}

// ListAdmins godoc
// @Summary List console staff
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admins [get]
func (h *AdminController) ListAdmins(c *gin.Context) {
	actor, ok := requireSession(c)
	if !ok {
		return
	}

	admins, err := h.svc.ListAdmins(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, admins, "")
}

// CreateAdmin godoc
// @Summary Provision an admin
// @Description Creates the credential and profile of a new admin; the caller stays signed in
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body request_models.CreateAdminRequest true "Admin payload"
// @Security BearerAuth
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admins [post]
func (h *AdminController) CreateAdmin(c *gin.Context) {
	actor, ok := requireSession(c)
	if !ok {
		return
	}

	var req request_models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	admin, err := h.svc.CreateAdmin(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, admin, "Admin created")
}

// DeleteAdmin godoc
// @Summary Delete an admin
// @Description Super admins cannot be deleted
// @Tags Admins
// @Produce json
// @Param id path string true "Account ID"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admins/{id} [delete]
func (h *AdminController) DeleteAdmin(c *gin.Context) {
	actor, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteAdmin(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Admin deleted")
}
