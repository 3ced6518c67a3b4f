package controller

import (
	"github.com/javier223222/soft-skills-practice-api/internal/service"
	"github.com/javier223222/soft-skills-practice-api/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

type StartPracticeRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	SoftSkillID uint   `json:"soft_skill_id" binding:"required"`
	ScenarioID  uint   `json:"scenario_id" binding:"required"`
}

type SubmitPracticeRequest struct {
	SessionID       string `json:"session_id" binding:"required"`
	UserInput       string `json:"user_input" binding:"required"`
	DurationSeconds int    `json:"duration_seconds" binding:"required,min=1"`
}

// StartPractice godoc
// @Summary Start a practice session
// @Tags Practice Sessions
// @Accept json
// @Produce json
// @Param request body StartPracticeRequest true "Start request"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /practice/start [post]
func (c *PracticeController) StartPractice(ctx *gin.Context) {
	var request StartPracticeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.PracticeService.StartPractice(
		ctx.Request.Context(), request.UserID, request.SoftSkillID, request.ScenarioID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// SubmitPractice godoc
// @Summary Submit a practice session
// @Description Scores the response, attaches feedback and completes the session
// @Tags Practice Sessions
// @Accept json
// @Produce json
// @Param request body SubmitPracticeRequest true "Submit request"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /practice/submit [post]
func (c *PracticeController) SubmitPractice(ctx *gin.Context) {
	var request SubmitPracticeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.PracticeService.SubmitPractice(
		ctx.Request.Context(), request.SessionID, request.UserInput, request.DurationSeconds)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
