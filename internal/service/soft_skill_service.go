package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/model"
	"github.com/javier223222/soft-skills-practice-api/internal/repository"
	"github.com/javier223222/soft-skills-practice-api/internal/util"
	"github.com/javier223222/soft-skills-practice-api/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "soft_skills:catalog"
	catalogCacheTTL = 10 * time.Minute
)

// SoftSkillService is the read-only catalog surface. The unannotated skill
// list is cached in Redis when a client is configured; a nil client
// disables the cache.
type SoftSkillService struct {
	SkillRepo    *repository.SoftSkillRepository
	ScenarioRepo *repository.ScenarioRepository
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
}

func NewSoftSkillService(
	skillRepo *repository.SoftSkillRepository,
	scenarioRepo *repository.ScenarioRepository,
	progressRepo *repository.ProgressRepository,
	rdb *redis.Client,
) *SoftSkillService {
	return &SoftSkillService{
		SkillRepo:    skillRepo,
		ScenarioRepo: scenarioRepo,
		ProgressRepo: progressRepo,
		Redis:        rdb,
	}
}

// ListSkills returns active skills. With a user id, each entry is annotated
// with that user's progress percentage and points.
func (s *SoftSkillService) ListSkills(ctx context.Context, userID string) ([]model.SoftSkillView, error) {
	if userID == "" {
		if views, ok := s.cachedCatalog(ctx); ok {
			return views, nil
		}
	}

	skills, err := s.SkillRepo.ListActive()
	if err != nil {
		return nil, err
	}

	views := make([]model.SoftSkillView, 0, len(skills))
	for i := range skills {
		views = append(views, skills[i].View())
	}

	if userID == "" {
		s.storeCatalog(ctx, views)
		return views, nil
	}

	progressBySkill, err := s.progressIndex(userID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if p, ok := progressBySkill[views[i].ID]; ok {
			views[i].ProgressPercentage = p.ProgressPercentage
			views[i].TotalPoints = p.TotalPoints
		}
	}
	return views, nil
}

func (s *SoftSkillService) GetSkill(ctx context.Context, skillID uint, userID string) (*model.SoftSkillView, error) {
	skill, err := s.SkillRepo.FindActiveByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("soft skill", skillID)
		}
		return nil, err
	}

	view := skill.View()
	if userID != "" {
		progress, err := s.ProgressRepo.FindByUserAndSkill(userID, skillID)
		if err == nil {
			view.ProgressPercentage = progress.ProgressPercentage
			view.TotalPoints = progress.TotalPoints
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return &view, nil
}

// ListScenarios returns active scenarios for an active skill, optionally
// filtered to popular ones.
func (s *SoftSkillService) ListScenarios(skillID uint, popularOnly bool) ([]model.ScenarioView, error) {
	if _, err := s.SkillRepo.FindActiveByID(skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("soft skill", skillID)
		}
		return nil, err
	}

	scenarios, err := s.ScenarioRepo.ListActiveForSkill(skillID, popularOnly)
	if err != nil {
		return nil, err
	}

	views := make([]model.ScenarioView, 0, len(scenarios))
	for i := range scenarios {
		views = append(views, scenarios[i].View())
	}
	return views, nil
}

func (s *SoftSkillService) progressIndex(userID string) (map[uint]*model.SoftSkillProgress, error) {
	records, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	index := make(map[uint]*model.SoftSkillProgress, len(records))
	for i := range records {
		index[records[i].SoftSkillID] = &records[i]
	}
	return index, nil
}

func (s *SoftSkillService) cachedCatalog(ctx context.Context) ([]model.SoftSkillView, bool) {
	if s.Redis == nil {
		return nil, false
	}

	raw, err := s.Redis.Get(ctx, catalogCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("Catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var views []model.SoftSkillView
	if err := json.Unmarshal([]byte(raw), &views); err != nil {
		return nil, false
	}
	return views, true
}

func (s *SoftSkillService) storeCatalog(ctx context.Context, views []model.SoftSkillView) {
	if s.Redis == nil {
		return
	}

	raw, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
		logger.Log.Warn("Catalog cache write failed", zap.Error(err))
	}
}
