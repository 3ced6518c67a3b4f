package model

import "time"

// API view types returned by the practice and progress services.

type PracticeSessionView struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	SoftSkill SoftSkillView  `json:"soft_skill"`
	Scenario  ScenarioView   `json:"scenario"`
	Status    PracticeStatus `json:"status"`
	StartedAt time.Time      `json:"started_at"`
}

type FeedbackView struct {
	OverallFeedback       string   `json:"overall_feedback"`
	ClarityFeedback       *string  `json:"clarity_feedback,omitempty"`
	EmpathyFeedback       *string  `json:"empathy_feedback,omitempty"`
	AssertivenessFeedback *string  `json:"assertiveness_feedback,omitempty"`
	ListeningFeedback     *string  `json:"listening_feedback,omitempty"`
	ConfidenceFeedback    *string  `json:"confidence_feedback,omitempty"`
	ImprovementAreas      []string `json:"improvement_areas"`
	LLMModelUsed          string   `json:"llm_model_used"`
}

type PracticeResultView struct {
	SessionID       string         `json:"session_id"`
	Status          PracticeStatus `json:"status"`
	Scores          ScoreBreakdown `json:"scores"`
	Feedback        FeedbackView   `json:"feedback"`
	PointsEarned    int            `json:"points_earned"`
	DurationSeconds int            `json:"duration_seconds"`
	CompletedAt     time.Time      `json:"completed_at"`
}

type BestScores struct {
	ClarityScore       *int `json:"clarity_score,omitempty"`
	EmpathyScore       *int `json:"empathy_score,omitempty"`
	AssertivenessScore *int `json:"assertiveness_score,omitempty"`
	ListeningScore     *int `json:"listening_score,omitempty"`
	ConfidenceScore    *int `json:"confidence_score,omitempty"`
}

type ProgressMetrics struct {
	TotalPractices     int        `json:"total_practices"`
	CompletedPractices int        `json:"completed_practices"`
	AverageScore       *float64   `json:"average_score,omitempty"`
	ProgressPercentage float64    `json:"progress_percentage"`
	TotalPoints        int        `json:"total_points"`
	BestScores         BestScores `json:"best_scores"`
}

type SkillProgressView struct {
	SoftSkill       SoftSkillView   `json:"soft_skill"`
	Metrics         ProgressMetrics `json:"metrics"`
	FirstPracticeAt *time.Time      `json:"first_practice_at,omitempty"`
	LastPracticeAt  *time.Time      `json:"last_practice_at,omitempty"`
}

type UserProgressSummary struct {
	UserID                  string              `json:"user_id"`
	TotalPoints             int                 `json:"total_points"`
	TotalCompletedPractices int                 `json:"total_completed_practices"`
	SoftSkillsProgress      []SkillProgressView `json:"soft_skills_progress"`
	ImprovementAreas        []string            `json:"improvement_areas"`
}
