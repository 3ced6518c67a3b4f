package model

import "time"

// PracticeStatus is the session lifecycle. Only started and completed are
// assigned by the workflow; in_progress is reserved and abandoned is set by
// administrative action outside this service.
type PracticeStatus string

const (
	StatusStarted    PracticeStatus = "started"
	StatusInProgress PracticeStatus = "in_progress"
	StatusCompleted  PracticeStatus = "completed"
	StatusAbandoned  PracticeStatus = "abandoned"
)

// PracticeTracking is one user's timed attempt at one scenario. Score fields
// stay null until the session is submitted.
type PracticeTracking struct {
	BaseModel
	SessionID   string `gorm:"size:36;uniqueIndex;not null" json:"session_id"`
	UserID      string `gorm:"size:100;index;not null" json:"user_id"` // external id, no FK
	SoftSkillID uint   `gorm:"index;not null" json:"soft_skill_id"`
	ScenarioID  uint   `gorm:"not null" json:"scenario_id"`

	Status          PracticeStatus `gorm:"size:20;default:started" json:"status"`
	UserInput       *string        `gorm:"type:text" json:"user_input,omitempty"`
	DurationSeconds *int           `json:"duration_seconds,omitempty"`

	ClarityScore       *int     `json:"clarity_score,omitempty"`
	EmpathyScore       *int     `json:"empathy_score,omitempty"`
	AssertivenessScore *int     `json:"assertiveness_score,omitempty"`
	ListeningScore     *int     `json:"listening_score,omitempty"`
	ConfidenceScore    *int     `json:"confidence_score,omitempty"`
	OverallScore       *float64 `json:"overall_score,omitempty"`

	PointsEarned int `gorm:"default:0" json:"points_earned"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (PracticeTracking) TableName() string { return "practice_tracking" }

// ScoreBreakdown is the scored view of a session, shared by the scorer, the
// feedback request payload and the submit response.
type ScoreBreakdown struct {
	ClarityScore       int     `json:"clarity_score"`
	EmpathyScore       int     `json:"empathy_score"`
	AssertivenessScore int     `json:"assertiveness_score"`
	ListeningScore     int     `json:"listening_score"`
	ConfidenceScore    int     `json:"confidence_score"`
	OverallScore       float64 `json:"overall_score"`
}
