package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skillswap/internal/models/request_models"
	"skillswap/internal/services"
	"skillswap/pkg/utils"
)

type SkillController struct {
	skillService services.SkillServiceInterface
	log          *zap.Logger
}

func NewSkillController(skillService services.SkillServiceInterface, log *zap.Logger) *SkillController {
	return &SkillController{skillService: skillService, log: log}
}

// AddOffered godoc
// @Summary Add an offered skill
// @Tags Skills
// @Security BearerAuth
// @Param request body request_models.CreateSkillRequest true "Skill"
// @Success 201 {object} utils.APIResponse
// @Router /skills/offered [post]
func (s *SkillController) AddOffered(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	skill, err := s.skillService.AddOffered(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondCreated(c, gin.H{"skill": skill}, "Skill added")
}

// AddWanted godoc
// @Summary Add a wanted skill
// @Tags Skills
// @Security BearerAuth
// @Param request body request_models.CreateWantedSkillRequest true "Skill"
// @Success 201 {object} utils.APIResponse
// @Router /skills/wanted [post]
func (s *SkillController) AddWanted(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.CreateWantedSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	skill, err := s.skillService.AddWanted(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondCreated(c, gin.H{"skill": skill}, "Skill added")
}

// RemoveOffered godoc
// @Summary Remove an owned offered skill
// @Tags Skills
// @Security BearerAuth
// @Param id path string true "Skill id"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /skills/offered/{id} [delete]
func (s *SkillController) RemoveOffered(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := s.skillService.RemoveOffered(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondNoContent(c)
}

// RemoveWanted godoc
// @Summary Remove an owned wanted skill
// @Tags Skills
// @Security BearerAuth
// @Param id path string true "Skill id"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /skills/wanted/{id} [delete]
func (s *SkillController) RemoveWanted(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := s.skillService.RemoveWanted(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, s.log, err)
		return
	}
	utils.RespondNoContent(c)
}
