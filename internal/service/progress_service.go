package service

import (
	"errors"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/model"
	"github.com/javier223222/soft-skills-practice-api/internal/repository"
	"github.com/javier223222/soft-skills-practice-api/internal/util"

	"gorm.io/gorm"
)

// Number of completed practices that counts as 100% mastery of a skill.
const practicesForFullProgress = 10

// Window and cap for the improvement-area tags surfaced in the progress
// summary.
const (
	improvementAreaWindow   = 30 * 24 * time.Hour
	improvementAreaScanSize = 10
	improvementAreaLimit    = 5
)

// ProgressService owns the per-(user, skill) rollup. The rollup is derived
// state: every recompute replays the pair's full session history, so the
// operation is idempotent and order-independent.
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	SkillRepo    *repository.SoftSkillRepository
	FeedbackRepo *repository.FeedbackRepository
	DB           *gorm.DB
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	skillRepo *repository.SoftSkillRepository,
	feedbackRepo *repository.FeedbackRepository,
	db *gorm.DB,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		SkillRepo:    skillRepo,
		FeedbackRepo: feedbackRepo,
		DB:           db,
	}
}

// Recompute rebuilds the rollup for the pair from scratch.
func (s *ProgressService) Recompute(userID string, skillID uint) (*model.SoftSkillProgress, error) {
	var result *model.SoftSkillProgress

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := s.ProgressRepo.FindOrCreateTx(tx, userID, skillID)
		if err != nil {
			return err
		}

		var practices []model.PracticeTracking
		if err := tx.Where("user_id = ? AND soft_skill_id = ?", userID, skillID).Find(&practices).Error; err != nil {
			return err
		}

		var completed []model.PracticeTracking
		for _, p := range practices {
			if p.Status == model.StatusCompleted {
				completed = append(completed, p)
			}
		}

		progress.TotalPractices = len(practices)
		progress.CompletedPractices = len(completed)

		var scoreSum float64
		var scoreCount int
		totalPoints := 0
		for _, p := range completed {
			if p.OverallScore != nil {
				scoreSum += *p.OverallScore
				scoreCount++
			}
			totalPoints += p.PointsEarned
		}
		if scoreCount > 0 {
			avg := scoreSum / float64(scoreCount)
			progress.AverageScore = &avg
		} else {
			progress.AverageScore = nil
		}

		percentage := float64(len(completed)) / practicesForFullProgress * 100
		if percentage > 100 {
			percentage = 100
		}
		progress.ProgressPercentage = percentage
		progress.TotalPoints = totalPoints

		progress.BestClarityScore = bestScore(completed, func(p *model.PracticeTracking) *int { return p.ClarityScore })
		progress.BestEmpathyScore = bestScore(completed, func(p *model.PracticeTracking) *int { return p.EmpathyScore })
		progress.BestAssertivenessScore = bestScore(completed, func(p *model.PracticeTracking) *int { return p.AssertivenessScore })
		progress.BestListeningScore = bestScore(completed, func(p *model.PracticeTracking) *int { return p.ListeningScore })
		progress.BestConfidenceScore = bestScore(completed, func(p *model.PracticeTracking) *int { return p.ConfidenceScore })

		// first_practice_at is set once and never regressed.
		if progress.FirstPracticeAt == nil && len(practices) > 0 {
			first := practices[0].StartedAt
			for _, p := range practices[1:] {
				if p.StartedAt.Before(first) {
					first = p.StartedAt
				}
			}
			progress.FirstPracticeAt = &first
		}

		for _, p := range completed {
			if p.CompletedAt == nil {
				continue
			}
			if progress.LastPracticeAt == nil || p.CompletedAt.After(*progress.LastPracticeAt) {
				t := *p.CompletedAt
				progress.LastPracticeAt = &t
			}
		}

		progress.UpdatedAt = time.Now().UTC()

		if err := s.ProgressRepo.SaveTx(tx, progress); err != nil {
			return err
		}

		result = progress
		return nil
	})

	return result, err
}

// GetUserProgress composes the full summary: all rollups plus the recent
// improvement-area tags drawn from feedback.
func (s *ProgressService) GetUserProgress(userID string) (*model.UserProgressSummary, error) {
	records, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	totalPoints := 0
	totalCompleted := 0
	progressViews := []model.SkillProgressView{}

	for i := range records {
		progress := &records[i]
		totalPoints += progress.TotalPoints
		totalCompleted += progress.CompletedPractices

		skill, err := s.SkillRepo.FindActiveByID(progress.SoftSkillID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // skill deactivated after the fact
			}
			return nil, err
		}

		progressViews = append(progressViews, buildSkillProgressView(skill, progress))
	}

	areas, err := s.recentImprovementAreas(userID)
	if err != nil {
		return nil, err
	}

	return &model.UserProgressSummary{
		UserID:                  userID,
		TotalPoints:             totalPoints,
		TotalCompletedPractices: totalCompleted,
		SoftSkillsProgress:      progressViews,
		ImprovementAreas:        areas,
	}, nil
}

// GetSkillProgress returns the single-skill detail, NotFound when the user
// has no rollup for that skill.
func (s *ProgressService) GetSkillProgress(userID string, skillID uint) (*model.SkillProgressView, error) {
	progress, err := s.ProgressRepo.FindByUserAndSkill(userID, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("progress for soft skill", skillID)
		}
		return nil, err
	}

	skill, err := s.SkillRepo.FindActiveByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("soft skill", skillID)
		}
		return nil, err
	}

	view := buildSkillProgressView(skill, progress)
	return &view, nil
}

func (s *ProgressService) recentImprovementAreas(userID string) ([]string, error) {
	since := time.Now().UTC().Add(-improvementAreaWindow)
	feedbacks, err := s.FeedbackRepo.ListRecentForUser(userID, since, improvementAreaScanSize)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	areas := []string{}
	for i := range feedbacks {
		for _, area := range feedbacks[i].ImprovementAreaList() {
			if seen[area] {
				continue
			}
			seen[area] = true
			areas = append(areas, area)
			if len(areas) == improvementAreaLimit {
				return areas, nil
			}
		}
	}
	return areas, nil
}

func buildSkillProgressView(skill *model.SoftSkill, progress *model.SoftSkillProgress) model.SkillProgressView {
	skillView := skill.View()
	skillView.ProgressPercentage = progress.ProgressPercentage
	skillView.TotalPoints = progress.TotalPoints

	return model.SkillProgressView{
		SoftSkill: skillView,
		Metrics: model.ProgressMetrics{
			TotalPractices:     progress.TotalPractices,
			CompletedPractices: progress.CompletedPractices,
			AverageScore:       progress.AverageScore,
			ProgressPercentage: progress.ProgressPercentage,
			TotalPoints:        progress.TotalPoints,
			BestScores: model.BestScores{
				ClarityScore:       progress.BestClarityScore,
				EmpathyScore:       progress.BestEmpathyScore,
				AssertivenessScore: progress.BestAssertivenessScore,
				ListeningScore:     progress.BestListeningScore,
				ConfidenceScore:    progress.BestConfidenceScore,
			},
		},
		FirstPracticeAt: progress.FirstPracticeAt,
		LastPracticeAt:  progress.LastPracticeAt,
	}
}

func bestScore(practices []model.PracticeTracking, pick func(*model.PracticeTracking) *int) *int {
	var best *int
	for i := range practices {
		score := pick(&practices[i])
		if score == nil {
			continue
		}
		if best == nil || *score > *best {
			v := *score
			best = &v
		}
	}
	return best
}
