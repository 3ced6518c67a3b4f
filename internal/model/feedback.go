package model

import (
	"encoding/json"
	"time"
)

// PracticeFeedback is one-to-one with a completed practice session.
// ImprovementAreas is persisted as a JSON-encoded string array.
type PracticeFeedback struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PracticeID uint `gorm:"uniqueIndex;not null" json:"practice_id"`

	OverallFeedback       string  `gorm:"size:2000;not null" json:"overall_feedback"`
	ClarityFeedback       *string `gorm:"size:500" json:"clarity_feedback,omitempty"`
	EmpathyFeedback       *string `gorm:"size:500" json:"empathy_feedback,omitempty"`
	AssertivenessFeedback *string `gorm:"size:500" json:"assertiveness_feedback,omitempty"`
	ListeningFeedback     *string `gorm:"size:500" json:"listening_feedback,omitempty"`
	ConfidenceFeedback    *string `gorm:"size:500" json:"confidence_feedback,omitempty"`

	ImprovementAreas string `gorm:"size:1000;default:'[]'" json:"-"`

	LLMModelUsed      string `gorm:"size:100;not null" json:"llm_model_used"`
	LLMResponseTimeMs *int   `json:"llm_response_time_ms,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (PracticeFeedback) TableName() string { return "feedback_practice" }

// ImprovementAreaList decodes the stored tag array. A corrupt value decodes
// to an empty list rather than failing a read path.
func (f *PracticeFeedback) ImprovementAreaList() []string {
	var areas []string
	if err := json.Unmarshal([]byte(f.ImprovementAreas), &areas); err != nil {
		return []string{}
	}
	return areas
}

func (f *PracticeFeedback) SetImprovementAreas(areas []string) {
	if areas == nil {
		areas = []string{}
	}
	raw, _ := json.Marshal(areas)
	f.ImprovementAreas = string(raw)
}
