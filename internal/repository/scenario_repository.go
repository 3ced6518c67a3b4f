package repository

import (
	"github.com/javier223222/soft-skills-practice-api/internal/model"

	"gorm.io/gorm"
)

type ScenarioRepository struct {
	DB *gorm.DB
}

func NewScenarioRepository(db *gorm.DB) *ScenarioRepository {
	return &ScenarioRepository{DB: db}
}

func (r *ScenarioRepository) FindActiveByID(id uint) (*model.SoftSkillScenario, error) {
	var scenario model.SoftSkillScenario
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&scenario).Error
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (r *ScenarioRepository) FindByID(id uint) (*model.SoftSkillScenario, error) {
	var scenario model.SoftSkillScenario
	err := r.DB.First(&scenario, id).Error
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (r *ScenarioRepository) ListActiveForSkill(skillID uint, popularOnly bool) ([]model.SoftSkillScenario, error) {
	query := r.DB.Where("soft_skill_id = ? AND is_active = ?", skillID, true)
	if popularOnly {
		query = query.Where("is_popular = ?", true)
	}

	var scenarios []model.SoftSkillScenario
	err := query.Order("id").Find(&scenarios).Error
	return scenarios, err
}
