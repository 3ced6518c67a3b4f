package controller

import (
	"strconv"

	"github.com/javier223222/soft-skills-practice-api/internal/service"
	"github.com/javier223222/soft-skills-practice-api/internal/util"

	"github.com/gin-gonic/gin"
)

type SoftSkillController struct {
	SkillService *service.SoftSkillService
}

func NewSoftSkillController(skillService *service.SoftSkillService) *SoftSkillController {
	return &SoftSkillController{SkillService: skillService}
}

// ListSoftSkills godoc
// @Summary List soft skills
// @Description Lists active soft skills, annotated with the caller's progress when user_id is given
// @Tags Soft Skills
// @Produce json
// @Param user_id query string false "External user id"
// @Success 200 {object} util.Response
// @Router /soft-skills [get]
func (c *SoftSkillController) ListSoftSkills(ctx *gin.Context) {
	userID := ctx.Query("user_id")

	skills, err := c.SkillService.ListSkills(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, skills)
}

// GetSoftSkill godoc
// @Summary Get a soft skill
// @Tags Soft Skills
// @Produce json
// @Param id path int true "Soft skill id"
// @Param user_id query string false "External user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /soft-skills/{id} [get]
func (c *SoftSkillController) GetSoftSkill(ctx *gin.Context) {
	skillID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid soft skill id")
		return
	}

	skill, err := c.SkillService.GetSkill(ctx.Request.Context(), skillID, ctx.Query("user_id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, skill)
}

// ListScenarios godoc
// @Summary List scenarios for a soft skill
// @Tags Soft Skills
// @Produce json
// @Param id path int true "Soft skill id"
// @Param include_popular_only query bool false "Only popular scenarios"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /soft-skills/{id}/scenarios [get]
func (c *SoftSkillController) ListScenarios(ctx *gin.Context) {
	skillID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid soft skill id")
		return
	}

	popularOnly := ctx.Query("include_popular_only") == "true"

	scenarios, err := c.SkillService.ListScenarios(skillID, popularOnly)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, scenarios)
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	return uint(v), err
}
