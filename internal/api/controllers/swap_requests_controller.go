package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skillswap/internal/models/request_models"
	"skillswap/internal/services"
	"skillswap/pkg/utils"
)

type SwapRequestController struct {
	swapService services.SwapServiceInterface
	log         *zap.Logger
}

func NewSwapRequestController(swapService services.SwapServiceInterface, log *zap.Logger) *SwapRequestController {
	return &SwapRequestController{swapService: swapService, log: log}
}

// List godoc
// @Summary Swap requests sent and received by the caller
// @Tags SwapRequests
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /swap-requests [get]
func (s *SwapRequestController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	resp, err := s.swapService.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// Create godoc
// @Summary Send a swap request
// @Tags SwapRequests
// @Security BearerAuth
// @Param request body request_models.CreateSwapRequest true "Swap request"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /swap-requests [post]
func (s *SwapRequestController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	swap, err := s.swapService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondCreated(c, gin.H{"request": swap}, "Swap request sent")
}

// UpdateStatus godoc
// @Summary Change a swap request's status
// @Tags SwapRequests
// @Security BearerAuth
// @Param id path string true "Swap request id"
// @Param request body request_models.UpdateSwapStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /swap-requests/{id}/status [put]
func (s *SwapRequestController) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.UpdateSwapStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	swap, err := s.swapService.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"request": swap}, "Swap request updated")
}

// Delete godoc
// @Summary Delete a swap request
// @Tags SwapRequests
// @Security BearerAuth
// @Param id path string true "Swap request id"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /swap-requests/{id} [delete]
func (s *SwapRequestController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := s.swapService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondNoContent(c)
}
