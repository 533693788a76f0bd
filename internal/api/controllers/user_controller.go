package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoquest/internal/models/request_models"
	"ecoquest/internal/services"
	"ecoquest/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

// ListUsers godoc
// @Summary List app users
// @Description Non-staff accounts, optionally filtered by name, email or id
// @Tags Users
// @Produce json
// @Param q query string false "Search text"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /users [get]
func (u *UserController) ListUsers(c *gin.Context) {
	var query request_models.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	users, err := u.userService.ListUsers(c.Request.Context(), query.Search)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "Account ID"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (u *UserController) GetUser(c *gin.Context) {
	user, err := u.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "")
}

// Sanction godoc
// @Summary Ban, unban or penalize a user
// @Description Sets the status and deducts points; a positive deduction is recorded as a penalty event
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request_models.SanctionRequest true "Sanction payload"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/{id}/sanction [put]
func (u *UserController) Sanction(c *gin.Context) {
	actor, ok := requireSession(c)
	if !ok {
		return
	}

	var req request_models.SanctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	out, err := u.userService.Sanction(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Data pengguna berhasil diperbarui")
}

// DeleteUser godoc
// @Summary Delete a user and their history
// @Tags Users
// @Produce json
// @Param id path string true "Account ID"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [delete]
func (u *UserController) DeleteUser(c *gin.Context) {
	actor, ok := requireSession(c)
	if !ok {
		return
	}

	if err := u.userService.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User deleted")
}
