package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skillswap/internal/models/request_models"
	"skillswap/internal/services"
	"skillswap/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	log         *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, log *zap.Logger) *UserController {
	return &UserController{userService: userService, log: log}
}

// ListPublic godoc
// @Summary List public users
// @Description Public users with their skills. Served from a short-lived cache.
// @Tags Users
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /users [get]
func (u *UserController) ListPublic(c *gin.Context) {
	users, err := u.userService.ListPublic(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, u.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"users": users}, "")
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (u *UserController) GetUser(c *gin.Context) {
	user, err := u.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, u.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"user": user}, "")
}

// Search godoc
// @Summary Search public users by skill
// @Description Case-insensitive substring match on offered and wanted skill names
// @Tags Users
// @Param skill query string false "Skill name fragment"
// @Success 200 {object} utils.APIResponse
// @Router /users/search [get]
func (u *UserController) Search(c *gin.Context) {
	users, err := u.userService.Search(c.Request.Context(), c.Query("skill"))
	if err != nil {
		utils.HandleServiceError(c, u.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"users": users}, "")
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags Users
// @Security BearerAuth
// @Param request body request_models.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /users/profile [put]
func (u *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := u.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, u.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"user": user}, "Profile updated")
}

// UpdateAvailability godoc
// @Summary Replace own availability
// @Tags Users
// @Security BearerAuth
// @Param request body request_models.UpdateAvailabilityRequest true "Availability slots"
// @Success 200 {object} utils.APIResponse
// @Router /users/availability [put]
func (u *UserController) UpdateAvailability(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := u.userService.UpdateAvailability(c.Request.Context(), userID, req.Slots())
	if err != nil {
		utils.HandleServiceError(c, u.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"user": user}, "Availability updated")
}

// TogglePublic godoc
// @Summary Flip own profile visibility
// @Tags Users
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /users/toggle-public [put]
func (u *UserController) TogglePublic(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := u.userService.TogglePublic(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, u.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"user": user}, "Visibility updated")
}
