package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/model"
	"github.com/javier223222/soft-skills-practice-api/internal/repository"
	"github.com/javier223222/soft-skills-practice-api/internal/util"
	"github.com/javier223222/soft-skills-practice-api/pkg/logger"
	"github.com/javier223222/soft-skills-practice-api/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PracticeService orchestrates the session lifecycle: validate, score,
// acquire feedback, persist, recompute progress, then fire best-effort side
// effects. Side effects run only after the transactional core has
// committed and can never fail the request.
type PracticeService struct {
	PracticeRepo *repository.PracticeRepository
	SkillRepo    *repository.SoftSkillRepository
	ScenarioRepo *repository.ScenarioRepository
	FeedbackRepo *repository.FeedbackRepository
	TrackingRepo *repository.TrackingLogRepository
	Scoring      *ScoringService
	Feedback     *FeedbackClient
	Events       *EventService
	Progress     *ProgressService
	DB           *gorm.DB
}

func NewPracticeService(
	practiceRepo *repository.PracticeRepository,
	skillRepo *repository.SoftSkillRepository,
	scenarioRepo *repository.ScenarioRepository,
	feedbackRepo *repository.FeedbackRepository,
	trackingRepo *repository.TrackingLogRepository,
	scoring *ScoringService,
	feedback *FeedbackClient,
	events *EventService,
	progress *ProgressService,
	db *gorm.DB,
) *PracticeService {
	return &PracticeService{
		PracticeRepo: practiceRepo,
		SkillRepo:    skillRepo,
		ScenarioRepo: scenarioRepo,
		FeedbackRepo: feedbackRepo,
		TrackingRepo: trackingRepo,
		Scoring:      scoring,
		Feedback:     feedback,
		Events:       events,
		Progress:     progress,
		DB:           db,
	}
}

// StartPractice creates a new session after validating the skill/scenario
// pairing.
func (s *PracticeService) StartPractice(ctx context.Context, userID string, skillID, scenarioID uint) (*model.PracticeSessionView, error) {
	skill, err := s.SkillRepo.FindActiveByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("soft skill", skillID)
		}
		return nil, err
	}

	scenario, err := s.ScenarioRepo.FindActiveByID(scenarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("scenario", scenarioID)
		}
		return nil, err
	}
	if scenario.SoftSkillID != skillID {
		return nil, util.NewValidationError("scenario %d does not belong to soft skill %d", scenarioID, skillID)
	}

	practice := &model.PracticeTracking{
		SessionID:   model.GenerateSessionID(),
		UserID:      userID,
		SoftSkillID: skillID,
		ScenarioID:  scenarioID,
		Status:      model.StatusStarted,
		StartedAt:   time.Now().UTC(),
	}
	if err := s.PracticeRepo.Create(practice); err != nil {
		return nil, err
	}

	monitoring.PracticeSessionsStarted.Inc()
	logger.Log.Info("Practice session started",
		zap.String("session_id", practice.SessionID), zap.String("user_id", userID))

	s.afterCommit(ctx, func(ctx context.Context) {
		s.logTrackingEvent(userID, practice.SessionID, model.EventPracticeStarted, map[string]interface{}{
			"soft_skill_id": skillID,
			"scenario_id":   scenarioID,
		})
	}, func(ctx context.Context) {
		s.Events.PublishPracticeStarted(ctx, userID, practice.SessionID, skillID, scenarioID)
	})

	return &model.PracticeSessionView{
		SessionID: practice.SessionID,
		UserID:    practice.UserID,
		SoftSkill: skill.View(),
		Scenario:  scenario.View(),
		Status:    practice.Status,
		StartedAt: practice.StartedAt,
	}, nil
}

// SubmitPractice completes a started session: scores the input, obtains
// feedback (remote or fallback), persists session and feedback atomically
// via a conditional state transition, then recomputes the rollup.
func (s *PracticeService) SubmitPractice(ctx context.Context, sessionID, userInput string, durationSeconds int) (*model.PracticeResultView, error) {
	practice, err := s.PracticeRepo.FindBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("practice session", sessionID)
		}
		return nil, err
	}
	if practice.Status != model.StatusStarted {
		return nil, util.NewInvalidStateError("practice session %s is not active", sessionID)
	}

	// The scenario/skill rows are loaded without the active filter: a
	// catalog entry deactivated mid-session must not block submission.
	skill, err := s.skillByID(practice.SoftSkillID)
	if err != nil {
		return nil, err
	}
	scenario, err := s.ScenarioRepo.FindByID(practice.ScenarioID)
	if err != nil {
		return nil, err
	}

	scores := s.Scoring.Score(userInput)
	pointsEarned := s.Scoring.Points(scores.OverallScore)

	feedbackContent := s.Feedback.GenerateFeedback(ctx, skill.Name, scenario.Description, userInput, scores)

	completedAt := time.Now().UTC()
	feedback := &model.PracticeFeedback{
		PracticeID:            practice.ID,
		OverallFeedback:       feedbackContent.OverallFeedback,
		ClarityFeedback:       feedbackContent.ClarityFeedback,
		EmpathyFeedback:       feedbackContent.EmpathyFeedback,
		AssertivenessFeedback: feedbackContent.AssertivenessFeedback,
		ListeningFeedback:     feedbackContent.ListeningFeedback,
		ConfidenceFeedback:    feedbackContent.ConfidenceFeedback,
		LLMModelUsed:          feedbackContent.ModelUsed,
		LLMResponseTimeMs:     feedbackContent.ResponseTimeMs,
	}
	feedback.SetImprovementAreas(feedbackContent.ImprovementAreas)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		transitioned, err := s.PracticeRepo.MarkCompleted(
			tx, practice.ID, userInput, durationSeconds, scores, pointsEarned, completedAt)
		if err != nil {
			return err
		}
		if !transitioned {
			// A concurrent submission won the conditional update.
			return util.NewInvalidStateError("practice session %s is not active", sessionID)
		}
		return s.FeedbackRepo.CreateTx(tx, feedback)
	})
	if err != nil {
		return nil, err
	}

	previousProgress := 0.0
	if prior, err := s.Progress.ProgressRepo.FindByUserAndSkill(practice.UserID, practice.SoftSkillID); err == nil {
		previousProgress = prior.ProgressPercentage
	}

	progress, err := s.Progress.Recompute(practice.UserID, practice.SoftSkillID)
	if err != nil {
		logger.Log.Error("Failed to recompute progress after submission",
			zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}

	monitoring.PracticeSessionsCompleted.Inc()
	logger.Log.Info("Practice session completed",
		zap.String("session_id", sessionID), zap.Float64("overall_score", scores.OverallScore))

	s.afterCommit(ctx, func(ctx context.Context) {
		s.logTrackingEvent(practice.UserID, sessionID, model.EventPracticeCompleted, map[string]interface{}{
			"overall_score":    scores.OverallScore,
			"points_earned":    pointsEarned,
			"duration_seconds": durationSeconds,
		})
	}, func(ctx context.Context) {
		s.Events.PublishPracticeCompleted(ctx, practice.UserID, sessionID,
			practice.SoftSkillID, practice.ScenarioID, scores.OverallScore, pointsEarned, durationSeconds)
	}, func(ctx context.Context) {
		s.Events.PublishProgressUpdated(ctx, practice.UserID, practice.SoftSkillID,
			previousProgress, progress.ProgressPercentage, pointsEarned)
	}, func(ctx context.Context) {
		s.publishMilestones(ctx, practice.UserID, practice.SoftSkillID, previousProgress, progress)
	})

	return &model.PracticeResultView{
		SessionID: sessionID,
		Status:    model.StatusCompleted,
		Scores:    scores,
		Feedback: model.FeedbackView{
			OverallFeedback:       feedback.OverallFeedback,
			ClarityFeedback:       feedback.ClarityFeedback,
			EmpathyFeedback:       feedback.EmpathyFeedback,
			AssertivenessFeedback: feedback.AssertivenessFeedback,
			ListeningFeedback:     feedback.ListeningFeedback,
			ConfidenceFeedback:    feedback.ConfidenceFeedback,
			ImprovementAreas:      feedback.ImprovementAreaList(),
			LLMModelUsed:          feedback.LLMModelUsed,
		},
		PointsEarned:    pointsEarned,
		DurationSeconds: durationSeconds,
		CompletedAt:     completedAt,
	}, nil
}

// publishMilestones emits the milestone events crossed by this completion.
func (s *PracticeService) publishMilestones(ctx context.Context, userID string, skillID uint, previousProgress float64, progress *model.SoftSkillProgress) {
	switch progress.CompletedPractices {
	case 1:
		s.Events.PublishMilestoneAchieved(ctx, userID, skillID, "first_practice", 1)
	case 10:
		s.Events.PublishMilestoneAchieved(ctx, userID, skillID, "10_practices", 10)
	}
	if previousProgress < 100 && progress.ProgressPercentage >= 100 {
		s.Events.PublishMilestoneAchieved(ctx, userID, skillID, "skill_mastery", progress.ProgressPercentage)
	}
}

// afterCommit runs post-commit side effects, each isolated so a panic or
// failure in one cannot affect the response or the others.
func (s *PracticeService) afterCommit(ctx context.Context, hooks ...func(context.Context)) {
	for _, hook := range hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Log.Warn("Post-commit hook panicked", zap.Any("panic", r))
				}
			}()
			hook(ctx)
		}()
	}
}

func (s *PracticeService) logTrackingEvent(userID, sessionID, eventType string, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte("{}")
	}

	log := &model.TrackingLog{
		UserID:            userID,
		PracticeSessionID: &sessionID,
		EventType:         eventType,
		EventData:         string(data),
		Timestamp:         time.Now().UTC(),
	}
	if err := s.TrackingRepo.Create(log); err != nil {
		logger.Log.Warn("Failed to write tracking log",
			zap.String("event_type", eventType), zap.Error(err))
	}
}

func (s *PracticeService) skillByID(id uint) (*model.SoftSkill, error) {
	var skill model.SoftSkill
	if err := s.DB.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}
