package repository

import (
	"errors"

	"github.com/javier223222/soft-skills-practice-api/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndSkill(userID string, skillID uint) (*model.SoftSkillProgress, error) {
	var progress model.SoftSkillProgress
	err := r.DB.Where("user_id = ? AND soft_skill_id = ?", userID, skillID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByUser(userID string) ([]model.SoftSkillProgress, error) {
	var records []model.SoftSkillProgress
	err := r.DB.Where("user_id = ?", userID).Order("soft_skill_id").Find(&records).Error
	return records, err
}

// FindOrCreateTx loads the single rollup row for the pair, creating it when
// absent. The composite unique index turns a concurrent first-time create
// into a retryable conflict instead of a duplicate row.
func (r *ProgressRepository) FindOrCreateTx(tx *gorm.DB, userID string, skillID uint) (*model.SoftSkillProgress, error) {
	var progress model.SoftSkillProgress
	err := tx.Where("user_id = ? AND soft_skill_id = ?", userID, skillID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = model.SoftSkillProgress{UserID: userID, SoftSkillID: skillID}
	if err := tx.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) SaveTx(tx *gorm.DB, progress *model.SoftSkillProgress) error {
	return tx.Save(progress).Error
}
