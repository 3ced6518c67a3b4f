package service

import (
	"context"
	"fmt"

	"github.com/javier223222/soft-skills-practice-api/internal/config"
	"github.com/javier223222/soft-skills-practice-api/internal/model"
	"github.com/javier223222/soft-skills-practice-api/pkg/logger"
	"github.com/javier223222/soft-skills-practice-api/pkg/monitoring"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// FallbackModelName identifies locally synthesized feedback.
const FallbackModelName = "fallback"

// FeedbackContent is what the workflow persists, whether it came from the
// remote generator or the local synthesizer.
type FeedbackContent struct {
	OverallFeedback       string
	ClarityFeedback       *string
	EmpathyFeedback       *string
	AssertivenessFeedback *string
	ListeningFeedback     *string
	ConfidenceFeedback    *string
	ImprovementAreas      []string
	ModelUsed             string
	ResponseTimeMs        *int
}

type feedbackRequest struct {
	SoftSkill     string               `json:"soft_skill"`
	Scenario      string               `json:"scenario"`
	UserResponse  string               `json:"user_response"`
	Scores        model.ScoreBreakdown `json:"scores"`
	Language      string               `json:"language"`
	FeedbackStyle string               `json:"feedback_style"`
}

type feedbackResponse struct {
	OverallFeedback       string   `json:"overall_feedback"`
	ClarityFeedback       *string  `json:"clarity_feedback"`
	EmpathyFeedback       *string  `json:"empathy_feedback"`
	AssertivenessFeedback *string  `json:"assertiveness_feedback"`
	ListeningFeedback     *string  `json:"listening_feedback"`
	ConfidenceFeedback    *string  `json:"confidence_feedback"`
	ImprovementAreas      []string `json:"improvement_areas"`
	ModelUsed             string   `json:"model_used"`
	ResponseTimeMs        *int     `json:"response_time_ms"`
}

// FeedbackClient calls the external feedback generator. It never fails the
// submission: every error path degrades to the local synthesizer.
type FeedbackClient struct {
	client *resty.Client
}

func NewFeedbackClient(cfg config.FeedbackConfig) *FeedbackClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.TimeoutSeconds)
	return &FeedbackClient{client: client}
}

func (c *FeedbackClient) GenerateFeedback(
	ctx context.Context,
	skillName string,
	scenarioDescription string,
	userInput string,
	scores model.ScoreBreakdown,
) FeedbackContent {
	payload := feedbackRequest{
		SoftSkill:     skillName,
		Scenario:      scenarioDescription,
		UserResponse:  userInput,
		Scores:        scores,
		Language:      "es",
		FeedbackStyle: "constructive",
	}

	var parsed feedbackResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&parsed).
		Post("/generate-feedback")

	if err != nil {
		logger.Log.Error("Feedback service unreachable, using fallback",
			zap.String("soft_skill", skillName), zap.Error(err))
		monitoring.FeedbackFallbacks.Inc()
		return FallbackFeedback(skillName, scores)
	}
	if resp.IsError() {
		logger.Log.Error("Feedback service returned error status, using fallback",
			zap.String("soft_skill", skillName), zap.Int("status", resp.StatusCode()))
		monitoring.FeedbackFallbacks.Inc()
		return FallbackFeedback(skillName, scores)
	}

	modelUsed := parsed.ModelUsed
	if modelUsed == "" {
		modelUsed = "unknown"
	}
	areas := parsed.ImprovementAreas
	if areas == nil {
		areas = []string{}
	}

	logger.Log.Info("Feedback generated", zap.String("soft_skill", skillName),
		zap.String("model", modelUsed))

	return FeedbackContent{
		OverallFeedback:       parsed.OverallFeedback,
		ClarityFeedback:       parsed.ClarityFeedback,
		EmpathyFeedback:       parsed.EmpathyFeedback,
		AssertivenessFeedback: parsed.AssertivenessFeedback,
		ListeningFeedback:     parsed.ListeningFeedback,
		ConfidenceFeedback:    parsed.ConfidenceFeedback,
		ImprovementAreas:      areas,
		ModelUsed:             modelUsed,
		ResponseTimeMs:        parsed.ResponseTimeMs,
	}
}

// FallbackFeedback selects a narrative template by overall-score band and
// derives improvement tags from the below-threshold metrics.
func FallbackFeedback(skillName string, scores model.ScoreBreakdown) FeedbackContent {
	var feedback string
	switch {
	case scores.OverallScore >= 4:
		feedback = fmt.Sprintf("¡Excelente trabajo practicando %s! Has demostrado un muy buen manejo de esta habilidad.", skillName)
	case scores.OverallScore >= 3:
		feedback = fmt.Sprintf("Buen trabajo practicando %s. Hay algunas áreas que puedes seguir mejorando.", skillName)
	default:
		feedback = fmt.Sprintf("Has dado un buen primer paso practicando %s. Con más práctica podrás mejorar significativamente.", skillName)
	}

	improvementAreas := []string{}
	if scores.ClarityScore < 3 {
		improvementAreas = append(improvementAreas, "Refine message clarity")
	}
	if scores.EmpathyScore < 3 {
		improvementAreas = append(improvementAreas, "Enhance active listening")
	}
	if scores.AssertivenessScore < 3 {
		improvementAreas = append(improvementAreas, "Improve tone control")
	}
	if scores.ConfidenceScore < 3 {
		improvementAreas = append(improvementAreas, "Build confidence")
	}

	return FeedbackContent{
		OverallFeedback:  feedback,
		ImprovementAreas: improvementAreas,
		ModelUsed:        FallbackModelName,
	}
}
