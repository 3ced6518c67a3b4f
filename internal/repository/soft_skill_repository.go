package repository

import (
	"github.com/javier223222/soft-skills-practice-api/internal/model"

	"gorm.io/gorm"
)

type SoftSkillRepository struct {
	DB *gorm.DB
}

func NewSoftSkillRepository(db *gorm.DB) *SoftSkillRepository {
	return &SoftSkillRepository{DB: db}
}

// FindActiveByID returns gorm.ErrRecordNotFound for missing and inactive
// skills alike; deactivation is this catalog's soft delete.
func (r *SoftSkillRepository) FindActiveByID(id uint) (*model.SoftSkill, error) {
	var skill model.SoftSkill
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SoftSkillRepository) ListActive() ([]model.SoftSkill, error) {
	var skills []model.SoftSkill
	err := r.DB.Where("is_active = ?", true).Order("id").Find(&skills).Error
	return skills, err
}
