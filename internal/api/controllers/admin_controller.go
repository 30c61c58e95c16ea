package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skillswap/internal/models/request_models"
	"skillswap/internal/services"
	"skillswap/pkg/utils"
)

// AdminController serves the routes behind RoleMiddleware("admin").
type AdminController struct {
	userService services.UserServiceInterface
	log         *zap.Logger
}

func NewAdminController(userService services.UserServiceInterface, log *zap.Logger) *AdminController {
	return &AdminController{userService: userService, log: log}
}

// ListUsers godoc
// @Summary Every user, public or private
// @Tags Admin
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.userService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"users": users}, "")
}

// SetStatus godoc
// @Summary Change a user's account status
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body request_models.UpdateUserStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Router /admin/users/{id}/status [put]
func (a *AdminController) SetStatus(c *gin.Context) {
	var req request_models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := a.userService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"user": user}, "Status updated")
}

// DeleteUser godoc
// @Summary Delete a user and the rows they own
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 204
// @Router /admin/users/{id} [delete]
func (a *AdminController) DeleteUser(c *gin.Context) {
	if err := a.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}
	utils.RespondNoContent(c)
}
