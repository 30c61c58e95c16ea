package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skillswap/internal/models/request_models"
	"skillswap/internal/services"
	"skillswap/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
	log             *zap.Logger
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface, log *zap.Logger) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService, log: log}
}

// AddFeedback godoc
// @Summary Leave feedback on a swap
// @Description The caller and the recipient must both take part in the swap request
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	feedback, err := f.feedbackService.AddFeedback(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, f.log, err)
		return
	}
	utils.RespondCreated(c, gin.H{"feedback": feedback}, "Feedback added successfully")
}

// ListForUser godoc
// @Summary Feedback received by a user
// @Tags Feedback
// @Param userId path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /feedback/user/{userId} [get]
func (f *FeedbackController) ListForUser(c *gin.Context) {
	feedback, err := f.feedbackService.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, f.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"feedback": feedback}, "")
}
