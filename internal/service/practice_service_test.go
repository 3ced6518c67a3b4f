package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/config"
	"github.com/javier223222/soft-skills-practice-api/internal/model"
	"github.com/javier223222/soft-skills-practice-api/internal/repository"
	"github.com/javier223222/soft-skills-practice-api/internal/util"
	"github.com/javier223222/soft-skills-practice-api/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// unreachableFeedbackURL forces the fallback path without waiting on a
// timeout: the connection is refused immediately.
const unreachableFeedbackURL = "http://127.0.0.1:1"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type serviceFixture struct {
	db       *gorm.DB
	practice *PracticeService
	progress *ProgressService
	skill    model.SoftSkill
	scenario model.SoftSkillScenario
}

func newServiceFixture(t *testing.T, feedbackURL string) *serviceFixture {
	t.Helper()

	db := newTestDB(t)

	skill := model.SoftSkill{
		Name:        "Communication",
		Description: "Express ideas clearly.",
		Category:    model.CategoryCommunication,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&skill).Error)

	scenario := model.SoftSkillScenario{
		SoftSkillID:              skill.ID,
		Title:                    "Presenting to stakeholders",
		Description:              "Present project results to senior stakeholders.",
		DifficultyLevel:          3,
		EstimatedDurationMinutes: 15,
		IsActive:                 true,
	}
	require.NoError(t, db.Create(&scenario).Error)

	skillRepo := repository.NewSoftSkillRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	trackingRepo := repository.NewTrackingLogRepository(db)

	progress := NewProgressService(progressRepo, skillRepo, feedbackRepo, db)
	practice := NewPracticeService(
		practiceRepo,
		skillRepo,
		scenarioRepo,
		feedbackRepo,
		trackingRepo,
		NewScoringService(rand.New(rand.NewSource(7))),
		NewFeedbackClient(config.FeedbackConfig{BaseURL: feedbackURL, TimeoutSeconds: time.Second}),
		NewEventService(config.EventBusConfig{}),
		progress,
		db,
	)

	return &serviceFixture{
		db:       db,
		practice: practice,
		progress: progress,
		skill:    skill,
		scenario: scenario,
	}
}

func TestStartPracticeCreatesSession(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)

	view, err := f.practice.StartPractice(context.Background(), "user-1", f.skill.ID, f.scenario.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "user-1", view.UserID)
	assert.Equal(t, model.StatusStarted, view.Status)
	assert.Equal(t, f.skill.Name, view.SoftSkill.Name)
	assert.Equal(t, f.scenario.Title, view.Scenario.Title)

	var stored model.PracticeTracking
	require.NoError(t, f.db.Where("session_id = ?", view.SessionID).First(&stored).Error)
	assert.Equal(t, model.StatusStarted, stored.Status)
	assert.Nil(t, stored.OverallScore)

	var logCount int64
	require.NoError(t, f.db.Model(&model.TrackingLog{}).Count(&logCount).Error)
	assert.Equal(t, int64(1), logCount)
}

func TestStartPracticeUnknownSkill(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)

	_, err := f.practice.StartPractice(context.Background(), "user-1", 999, f.scenario.ID)

	var notFound *util.NotFoundError
	require.ErrorAs(t, err, &notFound)

	var count int64
	require.NoError(t, f.db.Model(&model.PracticeTracking{}).Count(&count).Error)
	assert.Zero(t, count, "a failed start must not create a session")
}

func TestStartPracticeInactiveSkill(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)
	require.NoError(t, f.db.Model(&model.SoftSkill{}).Where("id = ?", f.skill.ID).Update("is_active", false).Error)

	_, err := f.practice.StartPractice(context.Background(), "user-1", f.skill.ID, f.scenario.ID)

	var notFound *util.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStartPracticeScenarioMismatch(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)

	other := model.SoftSkill{Name: "Leadership", Category: model.CategoryLeadership, IsActive: true}
	require.NoError(t, f.db.Create(&other).Error)
	otherScenario := model.SoftSkillScenario{
		SoftSkillID:              other.ID,
		Title:                    "Delegating responsibilities",
		DifficultyLevel:          3,
		EstimatedDurationMinutes: 20,
		IsActive:                 true,
	}
	require.NoError(t, f.db.Create(&otherScenario).Error)

	_, err := f.practice.StartPractice(context.Background(), "user-1", f.skill.ID, otherScenario.ID)

	var validation *util.ValidationError
	require.ErrorAs(t, err, &validation)

	var count int64
	require.NoError(t, f.db.Model(&model.PracticeTracking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitPracticeCompletesWithFallback(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)

	started, err := f.practice.StartPractice(context.Background(), "user-1", f.skill.ID, f.scenario.ID)
	require.NoError(t, err)

	result, err := f.practice.SubmitPractice(context.Background(), started.SessionID,
		"I understand your concern, could you clarify?", 120)
	require.NoError(t, err)

	assert.Equal(t, model.StatusCompleted, result.Status)
	assert.Equal(t, 120, result.DurationSeconds)
	assert.Greater(t, result.PointsEarned, 0)
	assert.Equal(t, FallbackModelName, result.Feedback.LLMModelUsed)
	assert.NotEmpty(t, result.Feedback.OverallFeedback)

	var stored model.PracticeTracking
	require.NoError(t, f.db.Where("session_id = ?", started.SessionID).First(&stored).Error)
	assert.Equal(t, model.StatusCompleted, stored.Status)
	require.NotNil(t, stored.OverallScore)
	assert.Equal(t, result.Scores.OverallScore, *stored.OverallScore)
	require.NotNil(t, stored.CompletedAt)

	var feedback model.PracticeFeedback
	require.NoError(t, f.db.Where("practice_id = ?", stored.ID).First(&feedback).Error)
	assert.Equal(t, FallbackModelName, feedback.LLMModelUsed)

	rollup, err := f.progress.GetSkillProgress("user-1", f.skill.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rollup.Metrics.CompletedPractices)
	assert.Equal(t, result.PointsEarned, rollup.Metrics.TotalPoints)
	assert.Equal(t, 10.0, rollup.Metrics.ProgressPercentage)

	var logCount int64
	require.NoError(t, f.db.Model(&model.TrackingLog{}).Count(&logCount).Error)
	assert.Equal(t, int64(2), logCount, "one start event plus one completion event")
}

func TestSubmitPracticeRemoteFeedback(t *testing.T) {
	srv := newFeedbackStub(t, `{
		"overall_feedback": "Solid delivery.",
		"improvement_areas": ["Refine message clarity"],
		"model_used": "gemini-pro",
		"response_time_ms": 310
	}`)
	defer srv.Close()

	f := newServiceFixture(t, srv.URL)

	started, err := f.practice.StartPractice(context.Background(), "user-1", f.skill.ID, f.scenario.ID)
	require.NoError(t, err)

	result, err := f.practice.SubmitPractice(context.Background(), started.SessionID, "my answer", 60)
	require.NoError(t, err)

	assert.Equal(t, "gemini-pro", result.Feedback.LLMModelUsed)
	assert.Equal(t, "Solid delivery.", result.Feedback.OverallFeedback)
	assert.Equal(t, []string{"Refine message clarity"}, result.Feedback.ImprovementAreas)
}

func TestSubmitPracticeUnknownSession(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)

	_, err := f.practice.SubmitPractice(context.Background(), "no-such-session", "answer", 60)

	var notFound *util.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSubmitPracticeTwice(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)

	started, err := f.practice.StartPractice(context.Background(), "user-1", f.skill.ID, f.scenario.ID)
	require.NoError(t, err)

	_, err = f.practice.SubmitPractice(context.Background(), started.SessionID, "first answer", 60)
	require.NoError(t, err)

	_, err = f.practice.SubmitPractice(context.Background(), started.SessionID, "second answer", 60)

	var stateErr *util.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	// The first submission's record is untouched.
	var stored model.PracticeTracking
	require.NoError(t, f.db.Where("session_id = ?", started.SessionID).First(&stored).Error)
	require.NotNil(t, stored.UserInput)
	assert.Equal(t, "first answer", *stored.UserInput)

	var feedbackCount int64
	require.NoError(t, f.db.Model(&model.PracticeFeedback{}).Count(&feedbackCount).Error)
	assert.Equal(t, int64(1), feedbackCount)
}

func TestSubmitPracticeConditionalTransition(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)

	started, err := f.practice.StartPractice(context.Background(), "user-1", f.skill.ID, f.scenario.ID)
	require.NoError(t, err)

	// A racing submission that already flipped the row after the status
	// pre-check: the conditional update must refuse the transition.
	require.NoError(t, f.db.Model(&model.PracticeTracking{}).
		Where("session_id = ?", started.SessionID).
		Update("status", model.StatusCompleted).Error)

	repo := repository.NewPracticeRepository(f.db)
	var practice model.PracticeTracking
	require.NoError(t, f.db.Where("session_id = ?", started.SessionID).First(&practice).Error)

	transitioned, err := repo.MarkCompleted(f.db, practice.ID, "late answer", 60,
		model.ScoreBreakdown{OverallScore: 3.0}, 10, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, transitioned)
}

func TestSubmitPracticeAllowsDeactivatedCatalog(t *testing.T) {
	f := newServiceFixture(t, unreachableFeedbackURL)

	started, err := f.practice.StartPractice(context.Background(), "user-1", f.skill.ID, f.scenario.ID)
	require.NoError(t, err)

	// Deactivating the catalog entries mid-session must not block the submit.
	require.NoError(t, f.db.Model(&model.SoftSkill{}).Where("id = ?", f.skill.ID).Update("is_active", false).Error)
	require.NoError(t, f.db.Model(&model.SoftSkillScenario{}).Where("id = ?", f.scenario.ID).Update("is_active", false).Error)

	result, err := f.practice.SubmitPractice(context.Background(), started.SessionID, "my answer", 60)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, result.Status)
}
