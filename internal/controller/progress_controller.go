package controller

import (
	"github.com/javier223222/soft-skills-practice-api/internal/service"
	"github.com/javier223222/soft-skills-practice-api/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetUserProgress godoc
// @Summary Get a user's progress across all soft skills
// @Tags Progress Tracking
// @Produce json
// @Param user_id path string true "External user id"
// @Success 200 {object} util.Response
// @Router /progress/{user_id} [get]
func (c *ProgressController) GetUserProgress(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	summary, err := c.ProgressService.GetUserProgress(userID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// GetSkillProgress godoc
// @Summary Get a user's progress for one soft skill
// @Tags Progress Tracking
// @Produce json
// @Param user_id path string true "External user id"
// @Param skill_id path int true "Soft skill id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /progress/{user_id}/soft-skills/{skill_id} [get]
func (c *ProgressController) GetSkillProgress(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	skillID, err := parseUintParam(ctx, "skill_id")
	if err != nil {
		util.BadRequest(ctx, "invalid soft skill id")
		return
	}

	detail, err := c.ProgressService.GetSkillProgress(userID, skillID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}
