package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/config"
	"github.com/javier223222/soft-skills-practice-api/internal/model"
	"github.com/javier223222/soft-skills-practice-api/internal/repository"
	"github.com/javier223222/soft-skills-practice-api/internal/service"
	"github.com/javier223222/soft-skills-practice-api/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type routerFixture struct {
	router   *gin.Engine
	db       *gorm.DB
	skill    model.SoftSkill
	scenario model.SoftSkillScenario
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	skill := model.SoftSkill{
		Name:     "Communication",
		Category: model.CategoryCommunication,
		IsActive: true,
	}
	require.NoError(t, db.Create(&skill).Error)
	scenario := model.SoftSkillScenario{
		SoftSkillID:              skill.ID,
		Title:                    "Giving constructive feedback",
		DifficultyLevel:          3,
		EstimatedDurationMinutes: 15,
		IsPopular:                true,
		IsActive:                 true,
	}
	require.NoError(t, db.Create(&scenario).Error)

	skillRepo := repository.NewSoftSkillRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	trackingRepo := repository.NewTrackingLogRepository(db)

	progressService := service.NewProgressService(progressRepo, skillRepo, feedbackRepo, db)
	practiceService := service.NewPracticeService(
		practiceRepo,
		skillRepo,
		scenarioRepo,
		feedbackRepo,
		trackingRepo,
		service.NewScoringService(rand.New(rand.NewSource(11))),
		service.NewFeedbackClient(config.FeedbackConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: time.Second}),
		service.NewEventService(config.EventBusConfig{}),
		progressService,
		db,
	)
	skillService := service.NewSoftSkillService(skillRepo, scenarioRepo, progressRepo, nil)

	softSkillController := NewSoftSkillController(skillService)
	practiceController := NewPracticeController(practiceService)
	progressController := NewProgressController(progressService)

	router := gin.New()
	router.GET("/soft-skills", softSkillController.ListSoftSkills)
	router.GET("/soft-skills/:id", softSkillController.GetSoftSkill)
	router.GET("/soft-skills/:id/scenarios", softSkillController.ListScenarios)
	router.POST("/practice/start", practiceController.StartPractice)
	router.POST("/practice/submit", practiceController.SubmitPractice)
	router.GET("/progress/:user_id", progressController.GetUserProgress)
	router.GET("/progress/:user_id/soft-skills/:skill_id", progressController.GetSkillProgress)

	return &routerFixture{router: router, db: db, skill: skill, scenario: scenario}
}

func (f *routerFixture) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func (f *routerFixture) startSession(t *testing.T, userID string) string {
	t.Helper()

	w, env := f.do(t, http.MethodPost, "/practice/start", gin.H{
		"user_id":       userID,
		"soft_skill_id": f.skill.ID,
		"scenario_id":   f.scenario.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var session model.PracticeSessionView
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.SessionID)
	return session.SessionID
}

func TestStartPracticeEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	w, env := f.do(t, http.MethodPost, "/practice/start", gin.H{
		"user_id":       "user-1",
		"soft_skill_id": f.skill.ID,
		"scenario_id":   f.scenario.ID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusOK, env.Code)
	assert.Equal(t, "success", env.Message)

	var session model.PracticeSessionView
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, model.StatusStarted, session.Status)
}

func TestStartPracticeMissingFields(t *testing.T) {
	f := newRouterFixture(t)

	w, _ := f.do(t, http.MethodPost, "/practice/start", gin.H{"user_id": "user-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartPracticeUnknownSkill(t *testing.T) {
	f := newRouterFixture(t)

	w, _ := f.do(t, http.MethodPost, "/practice/start", gin.H{
		"user_id":       "user-1",
		"soft_skill_id": 999,
		"scenario_id":   f.scenario.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitPracticeEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	sessionID := f.startSession(t, "user-1")

	w, env := f.do(t, http.MethodPost, "/practice/submit", gin.H{
		"session_id":       sessionID,
		"user_input":       "I understand your concern, could you clarify?",
		"duration_seconds": 90,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var result model.PracticeResultView
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, model.StatusCompleted, result.Status)
	assert.Equal(t, service.FallbackModelName, result.Feedback.LLMModelUsed)
}

func TestSubmitPracticeZeroDuration(t *testing.T) {
	f := newRouterFixture(t)
	sessionID := f.startSession(t, "user-1")

	w, _ := f.do(t, http.MethodPost, "/practice/submit", gin.H{
		"session_id":       sessionID,
		"user_input":       "answer",
		"duration_seconds": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitPracticeUnknownSession(t *testing.T) {
	f := newRouterFixture(t)

	w, _ := f.do(t, http.MethodPost, "/practice/submit", gin.H{
		"session_id":       "no-such-session",
		"user_input":       "answer",
		"duration_seconds": 60,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitPracticeConflictOnResubmit(t *testing.T) {
	f := newRouterFixture(t)
	sessionID := f.startSession(t, "user-1")

	payload := gin.H{
		"session_id":       sessionID,
		"user_input":       "answer",
		"duration_seconds": 60,
	}

	w, _ := f.do(t, http.MethodPost, "/practice/submit", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := f.do(t, http.MethodPost, "/practice/submit", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, env.Message, fmt.Sprintf("practice session %s", sessionID))
}
