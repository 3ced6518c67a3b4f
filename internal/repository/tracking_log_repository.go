package repository

import (
	"github.com/javier223222/soft-skills-practice-api/internal/model"

	"gorm.io/gorm"
)

type TrackingLogRepository struct {
	DB *gorm.DB
}

func NewTrackingLogRepository(db *gorm.DB) *TrackingLogRepository {
	return &TrackingLogRepository{DB: db}
}

func (r *TrackingLogRepository) Create(log *model.TrackingLog) error {
	return r.DB.Create(log).Error
}
