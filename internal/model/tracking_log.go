package model

import "time"

// Tracking event types written by the practice workflow.
const (
	EventPracticeStarted   = "practice_started"
	EventPracticeCompleted = "practice_completed"
)

// TrackingLog is an append-only audit record. The workflow only ever writes
// it; nothing in this service reads it back.
type TrackingLog struct {
	ID                uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            string  `gorm:"size:100;index;not null" json:"user_id"`
	PracticeSessionID *string `gorm:"size:36" json:"practice_session_id,omitempty"`
	EventType         string  `gorm:"size:50;not null" json:"event_type"`
	EventData         string  `gorm:"size:2000;default:'{}'" json:"event_data"`
	Timestamp         time.Time `json:"timestamp"`

	UserAgent *string `gorm:"size:500" json:"user_agent,omitempty"`
	IPAddress *string `gorm:"size:45" json:"ip_address,omitempty"`
}

func (TrackingLog) TableName() string { return "tracking_logs" }
