package database

import (
	"log"

	"github.com/javier223222/soft-skills-practice-api/internal/config"
	"github.com/javier223222/soft-skills-practice-api/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedCatalog(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.SoftSkill{},
		&model.SoftSkillScenario{},
		&model.PracticeTracking{},
		&model.PracticeFeedback{},
		&model.SoftSkillProgress{},
		&model.TrackingLog{},
	)
}

// SeedCatalog inserts the default skills and scenarios when the catalog is
// empty. Catalog data is reference data: the workflow never mutates it.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.SoftSkill{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	skills := []model.SoftSkill{
		{
			Name:        "Conflict Resolution",
			Description: "Learn to analyze complex situations and find practical and creative solutions to overcome obstacles.",
			Category:    model.CategoryProblemSolving,
			IconName:    "conflict_resolution",
			ColorTheme:  "cyan",
			IsActive:    true,
		},
		{
			Name:        "Critical Thinking",
			Description: "Develop your ability to analyze information logically and make informed decisions.",
			Category:    model.CategoryProblemSolving,
			IconName:    "critical_thinking",
			ColorTheme:  "purple",
			IsActive:    true,
		},
		{
			Name:        "Empathy",
			Description: "Strengthen your ability to understand the emotions and perspectives of others by showing genuine interest and support.",
			Category:    model.CategoryEmotionalIntelligence,
			IconName:    "empathy",
			ColorTheme:  "red",
			IsActive:    true,
		},
		{
			Name:        "Communication",
			Description: "Enhance your ability to express ideas clearly and effectively in various situations.",
			Category:    model.CategoryCommunication,
			IconName:    "communication",
			ColorTheme:  "blue",
			IsActive:    true,
		},
		{
			Name:        "Leadership",
			Description: "Develop skills to guide and inspire teams towards achieving common goals.",
			Category:    model.CategoryLeadership,
			IconName:    "leadership",
			ColorTheme:  "green",
			IsActive:    true,
		},
		{
			Name:        "Teamwork",
			Description: "Learn to collaborate effectively with others to achieve shared objectives.",
			Category:    model.CategoryTeamwork,
			IconName:    "teamwork",
			ColorTheme:  "orange",
			IsActive:    true,
		},
	}

	for i := range skills {
		if err := db.Create(&skills[i]).Error; err != nil {
			return err
		}
	}

	scenariosBySkill := map[string][]model.SoftSkillScenario{
		"Conflict Resolution": {
			{Title: "Asking for a raise", Description: "You need to approach your boss to discuss a salary increase. How do you prepare for this conversation and what points do you emphasize?", DifficultyLevel: 3, EstimatedDurationMinutes: 15, IsPopular: true, IsActive: true},
			{Title: "Telling a classmate I didn't like their behavior", Description: "A classmate has been behaving in a way that makes you uncomfortable. How do you address this situation respectfully?", DifficultyLevel: 2, EstimatedDurationMinutes: 10, IsPopular: true, IsActive: true},
			{Title: "Disagreement with team member", Description: "You and a team member have different opinions on how to approach a project. How do you resolve this disagreement?", DifficultyLevel: 3, EstimatedDurationMinutes: 20, IsActive: true},
		},
		"Critical Thinking": {
			{Title: "Analyzing a complex problem", Description: "Your team is facing a technical challenge that seems to have no clear solution. How do you approach problem-solving?", DifficultyLevel: 4, EstimatedDurationMinutes: 25, IsPopular: true, IsActive: true},
			{Title: "Making a data-driven decision", Description: "You have conflicting data points and need to make an important business decision. How do you proceed?", DifficultyLevel: 3, EstimatedDurationMinutes: 20, IsActive: true},
		},
		"Empathy": {
			{Title: "Supporting a struggling colleague", Description: "A colleague seems overwhelmed and stressed. How do you offer support while being respectful of their situation?", DifficultyLevel: 2, EstimatedDurationMinutes: 15, IsPopular: true, IsActive: true},
			{Title: "Understanding different perspectives", Description: "During a team meeting, there are several different viewpoints. How do you ensure everyone feels heard?", DifficultyLevel: 3, EstimatedDurationMinutes: 20, IsActive: true},
		},
		"Communication": {
			{Title: "Presenting to stakeholders", Description: "You need to present project results to senior stakeholders. How do you communicate effectively?", DifficultyLevel: 4, EstimatedDurationMinutes: 30, IsPopular: true, IsActive: true},
			{Title: "Giving constructive feedback", Description: "A team member's work needs improvement. How do you provide feedback that is helpful and encouraging?", DifficultyLevel: 3, EstimatedDurationMinutes: 15, IsPopular: true, IsActive: true},
		},
		"Leadership": {
			{Title: "Motivating a demotivated team", Description: "Your team morale is low after a failed project. How do you re-energize and motivate them?", DifficultyLevel: 4, EstimatedDurationMinutes: 25, IsPopular: true, IsActive: true},
			{Title: "Delegating responsibilities", Description: "You have multiple tasks and need to delegate effectively. How do you assign tasks appropriately?", DifficultyLevel: 3, EstimatedDurationMinutes: 20, IsActive: true},
		},
		"Teamwork": {
			{Title: "Collaborating on a group project", Description: "You're working on a group project with people from different departments. How do you ensure effective collaboration?", DifficultyLevel: 2, EstimatedDurationMinutes: 20, IsPopular: true, IsActive: true},
			{Title: "Managing team conflicts", Description: "Two team members are in conflict and it's affecting the team. How do you help resolve the situation?", DifficultyLevel: 4, EstimatedDurationMinutes: 30, IsActive: true},
		},
	}

	for _, skill := range skills {
		for _, scenario := range scenariosBySkill[skill.Name] {
			scenario.SoftSkillID = skill.ID
			if err := db.Create(&scenario).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Catalog seed data inserted")
	return nil
}
