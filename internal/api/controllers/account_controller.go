package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skillswap/internal/models/request_models"
	"skillswap/internal/services"
	"skillswap/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	log            *zap.Logger
}

func NewAccountController(accountService services.AccountServiceInterface, log *zap.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		log:            log,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user from a multipart form (optional profile_photo part) or a JSON body
// @Tags Auth
// @Accept multipart/form-data,json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if rejectUnknownFormFields(c, req) {
		return
	}

	resp, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}

	utils.RespondCreated(c, resp, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Tokens are stateless, so this always succeeds
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"success": true}, "Logged out")
}

// Me godoc
// @Summary Current user
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (a *AccountController) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := a.accountService.Me(c.Request.Context(), userID)
	if errors.Is(err, utils.ErrUserNotFound) {
		utils.RespondErrorData(c, http.StatusUnauthorized, "User not found", gin.H{"user": nil})
		return
	}
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": user}, "")
}
