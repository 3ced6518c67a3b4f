package model

// SoftSkillCategory groups skills for the catalog UI.
type SoftSkillCategory string

const (
	CategoryCommunication         SoftSkillCategory = "communication"
	CategoryLeadership            SoftSkillCategory = "leadership"
	CategoryProblemSolving        SoftSkillCategory = "problem_solving"
	CategoryEmotionalIntelligence SoftSkillCategory = "emotional_intelligence"
	CategoryTeamwork              SoftSkillCategory = "teamwork"
)

// SoftSkill is catalog data, seeded out-of-band and read-only to the
// practice workflow. Rows are never hard-deleted, only deactivated.
type SoftSkill struct {
	BaseModel
	Name        string            `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string            `gorm:"size:500" json:"description"`
	Category    SoftSkillCategory `gorm:"size:50;not null" json:"category"`
	IconName    string            `gorm:"size:50" json:"icon_name"`
	ColorTheme  string            `gorm:"size:20" json:"color_theme"`
	IsActive    bool              `gorm:"default:true" json:"is_active"`
}

func (SoftSkill) TableName() string { return "soft_skills" }

// SoftSkillView is the API shape of a skill, optionally annotated with the
// caller's progress.
type SoftSkillView struct {
	ID                 uint              `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Category           SoftSkillCategory `json:"category"`
	IconName           string            `json:"icon_name"`
	ColorTheme         string            `json:"color_theme"`
	ProgressPercentage float64           `json:"progress_percentage"`
	TotalPoints        int               `json:"total_points"`
}

func (s *SoftSkill) View() SoftSkillView {
	return SoftSkillView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		IconName:    s.IconName,
		ColorTheme:  s.ColorTheme,
	}
}
