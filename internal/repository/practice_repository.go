package repository

import (
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/model"

	"gorm.io/gorm"
)

type PracticeRepository struct {
	DB *gorm.DB
}

func NewPracticeRepository(db *gorm.DB) *PracticeRepository {
	return &PracticeRepository{DB: db}
}

func (r *PracticeRepository) Create(practice *model.PracticeTracking) error {
	return r.DB.Create(practice).Error
}

func (r *PracticeRepository) FindBySessionID(sessionID string) (*model.PracticeTracking, error) {
	var practice model.PracticeTracking
	err := r.DB.Where("session_id = ?", sessionID).First(&practice).Error
	if err != nil {
		return nil, err
	}
	return &practice, nil
}

func (r *PracticeRepository) ListByUserAndSkill(userID string, skillID uint) ([]model.PracticeTracking, error) {
	var practices []model.PracticeTracking
	err := r.DB.Where("user_id = ? AND soft_skill_id = ?", userID, skillID).Find(&practices).Error
	return practices, err
}

// MarkCompleted performs the conditional started→completed transition.
// The WHERE clause on status makes the transition at-most-once: a racing
// second submission matches zero rows and reports false.
func (r *PracticeRepository) MarkCompleted(
	tx *gorm.DB,
	practiceID uint,
	userInput string,
	durationSeconds int,
	scores model.ScoreBreakdown,
	pointsEarned int,
	completedAt time.Time,
) (bool, error) {
	result := tx.Model(&model.PracticeTracking{}).
		Where("id = ? AND status = ?", practiceID, model.StatusStarted).
		Updates(map[string]interface{}{
			"status":              model.StatusCompleted,
			"user_input":          userInput,
			"duration_seconds":    durationSeconds,
			"clarity_score":       scores.ClarityScore,
			"empathy_score":       scores.EmpathyScore,
			"assertiveness_score": scores.AssertivenessScore,
			"listening_score":     scores.ListeningScore,
			"confidence_score":    scores.ConfidenceScore,
			"overall_score":       scores.OverallScore,
			"points_earned":       pointsEarned,
			"completed_at":        completedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
