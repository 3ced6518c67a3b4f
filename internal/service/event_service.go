package service

import (
	"context"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/config"
	"github.com/javier223222/soft-skills-practice-api/pkg/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	eventSource  = "soft_skill_practice_service"
	eventVersion = "1.0.0"
)

// EventService publishes lifecycle events to the external event bus.
// Fire-and-forget: an unset bus URL disables it and every failure is logged
// and discarded.
type EventService struct {
	client  *resty.Client
	enabled bool
}

func NewEventService(cfg config.EventBusConfig) *EventService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.TimeoutSeconds)
	return &EventService{
		client:  client,
		enabled: cfg.BaseURL != "",
	}
}

type practiceEvent struct {
	EventType   string                 `json:"event_type"`
	UserID      string                 `json:"user_id"`
	SessionID   string                 `json:"session_id"`
	SoftSkillID uint                   `json:"soft_skill_id"`
	ScenarioID  uint                   `json:"scenario_id"`
	Timestamp   time.Time              `json:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata"`
}

func (s *EventService) PublishPracticeStarted(ctx context.Context, userID, sessionID string, skillID, scenarioID uint) {
	if !s.enabled {
		return
	}

	s.publish(ctx, "practice.started", practiceEvent{
		EventType:   "practice_started",
		UserID:      userID,
		SessionID:   sessionID,
		SoftSkillID: skillID,
		ScenarioID:  scenarioID,
		Timestamp:   time.Now().UTC(),
		Metadata: map[string]interface{}{
			"source":  eventSource,
			"version": eventVersion,
		},
	})
}

func (s *EventService) PublishPracticeCompleted(
	ctx context.Context,
	userID, sessionID string,
	skillID, scenarioID uint,
	overallScore float64,
	pointsEarned, durationSeconds int,
) {
	if !s.enabled {
		return
	}

	s.publish(ctx, "practice.completed", practiceEvent{
		EventType:   "practice_completed",
		UserID:      userID,
		SessionID:   sessionID,
		SoftSkillID: skillID,
		ScenarioID:  scenarioID,
		Timestamp:   time.Now().UTC(),
		Metadata: map[string]interface{}{
			"overall_score":    overallScore,
			"points_earned":    pointsEarned,
			"duration_seconds": durationSeconds,
			"source":           eventSource,
			"version":          eventVersion,
		},
	})
}

func (s *EventService) PublishProgressUpdated(ctx context.Context, userID string, skillID uint, previousProgress, newProgress float64, pointsEarned int) {
	if !s.enabled {
		return
	}

	s.publish(ctx, "progress.updated", map[string]interface{}{
		"event_type":        "progress_updated",
		"user_id":           userID,
		"soft_skill_id":     skillID,
		"previous_progress": previousProgress,
		"new_progress":      newProgress,
		"points_earned":     pointsEarned,
		"timestamp":         time.Now().UTC(),
	})
}

func (s *EventService) PublishMilestoneAchieved(ctx context.Context, userID string, skillID uint, milestoneType string, milestoneValue interface{}) {
	if !s.enabled {
		return
	}

	s.publish(ctx, "milestone.achieved", map[string]interface{}{
		"event_type":      "milestone_achieved",
		"user_id":         userID,
		"soft_skill_id":   skillID,
		"milestone_type":  milestoneType, // "first_practice", "10_practices", "skill_mastery"
		"milestone_value": milestoneValue,
		"timestamp":       time.Now().UTC(),
		"metadata": map[string]interface{}{
			"source":  eventSource,
			"version": eventVersion,
		},
	})
}

func (s *EventService) publish(ctx context.Context, topic string, event interface{}) {
	payload := map[string]interface{}{
		"topic":     topic,
		"event":     event,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/events/publish")

	if err != nil {
		logger.Log.Warn("Failed to publish event", zap.String("topic", topic), zap.Error(err))
		return
	}
	if resp.IsError() {
		logger.Log.Warn("Event bus returned error status",
			zap.String("topic", topic), zap.Int("status", resp.StatusCode()))
		return
	}

	logger.Log.Info("Event published", zap.String("topic", topic))
}
