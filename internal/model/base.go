package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel carries the integer key and timestamps shared by catalog tables.
type BaseModel struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func GenerateSessionID() string {
	return uuid.New().String()
}
