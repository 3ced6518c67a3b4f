package repository

import (
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) CreateTx(tx *gorm.DB, feedback *model.PracticeFeedback) error {
	return tx.Create(feedback).Error
}

func (r *FeedbackRepository) FindByPracticeID(practiceID uint) (*model.PracticeFeedback, error) {
	var feedback model.PracticeFeedback
	err := r.DB.Where("practice_id = ?", practiceID).First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// ListRecentForUser returns feedback for the user's sessions completed since
// the cutoff, newest first, capped at limit.
func (r *FeedbackRepository) ListRecentForUser(userID string, since time.Time, limit int) ([]model.PracticeFeedback, error) {
	var feedbacks []model.PracticeFeedback
	err := r.DB.
		Joins("JOIN practice_tracking ON practice_tracking.id = feedback_practice.practice_id").
		Where("practice_tracking.user_id = ? AND practice_tracking.completed_at >= ?", userID, since).
		Order("practice_tracking.completed_at DESC").
		Limit(limit).
		Find(&feedbacks).Error
	return feedbacks, err
}
