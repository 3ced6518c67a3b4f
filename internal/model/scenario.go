package model

// SoftSkillScenario is a situational prompt belonging to exactly one skill.
// The skill must be active when the scenario is created; the pairing is not
// re-validated afterwards.
type SoftSkillScenario struct {
	BaseModel
	SoftSkillID              uint   `gorm:"index;not null" json:"soft_skill_id"`
	Title                    string `gorm:"size:200;not null" json:"title"`
	Description              string `gorm:"size:1000" json:"description"`
	DifficultyLevel          int    `gorm:"not null" json:"difficulty_level"`            // 1=easy .. 5=expert
	EstimatedDurationMinutes int    `gorm:"not null" json:"estimated_duration_minutes"` // 1..60
	IsPopular                bool   `gorm:"default:false" json:"is_popular"`
	IsActive                 bool   `gorm:"default:true" json:"is_active"`
}

func (SoftSkillScenario) TableName() string { return "soft_skill_scenarios" }

type ScenarioView struct {
	ID                       uint   `json:"id"`
	Title                    string `json:"title"`
	Description              string `json:"description"`
	DifficultyLevel          int    `json:"difficulty_level"`
	EstimatedDurationMinutes int    `json:"estimated_duration_minutes"`
	IsPopular                bool   `json:"is_popular"`
}

func (s *SoftSkillScenario) View() ScenarioView {
	return ScenarioView{
		ID:                       s.ID,
		Title:                    s.Title,
		Description:              s.Description,
		DifficultyLevel:          s.DifficultyLevel,
		EstimatedDurationMinutes: s.EstimatedDurationMinutes,
		IsPopular:                s.IsPopular,
	}
}
