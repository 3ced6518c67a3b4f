package model

import "time"

// SoftSkillProgress is the derived per-(user, skill) rollup. It is rebuilt
// from practice history on every recompute and can always be reconstructed
// by replaying completed sessions. The composite unique index enforces one
// row per pair.
type SoftSkillProgress struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string `gorm:"size:100;not null;uniqueIndex:idx_user_skill" json:"user_id"`
	SoftSkillID uint   `gorm:"not null;uniqueIndex:idx_user_skill" json:"soft_skill_id"`

	TotalPractices     int      `gorm:"default:0" json:"total_practices"`
	CompletedPractices int      `gorm:"default:0" json:"completed_practices"`
	AverageScore       *float64 `json:"average_score,omitempty"`
	ProgressPercentage float64  `gorm:"default:0" json:"progress_percentage"`
	TotalPoints        int      `gorm:"default:0" json:"total_points"`

	BestClarityScore       *int `json:"best_clarity_score,omitempty"`
	BestEmpathyScore       *int `json:"best_empathy_score,omitempty"`
	BestAssertivenessScore *int `json:"best_assertiveness_score,omitempty"`
	BestListeningScore     *int `json:"best_listening_score,omitempty"`
	BestConfidenceScore    *int `json:"best_confidence_score,omitempty"`

	FirstPracticeAt *time.Time `json:"first_practice_at,omitempty"`
	LastPracticeAt  *time.Time `json:"last_practice_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (SoftSkillProgress) TableName() string { return "soft_skill_progress" }
