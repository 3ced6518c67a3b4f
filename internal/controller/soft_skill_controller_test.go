package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/javier223222/soft-skills-practice-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSoftSkillsEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	inactive := model.SoftSkill{Name: "Retired Skill", Category: model.CategoryLeadership, IsActive: false}
	require.NoError(t, f.db.Create(&inactive).Error)

	w, env := f.do(t, http.MethodGet, "/soft-skills", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var skills []model.SoftSkillView
	require.NoError(t, json.Unmarshal(env.Data, &skills))
	require.Len(t, skills, 1, "inactive skills stay out of the catalog")
	assert.Equal(t, f.skill.Name, skills[0].Name)
}

func TestListSoftSkillsWithUserAnnotation(t *testing.T) {
	f := newRouterFixture(t)

	sessionID := f.startSession(t, "user-1")
	w, _ := f.do(t, http.MethodPost, "/practice/submit", map[string]interface{}{
		"session_id":       sessionID,
		"user_input":       "answer",
		"duration_seconds": 60,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := f.do(t, http.MethodGet, "/soft-skills?user_id=user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var skills []model.SoftSkillView
	require.NoError(t, json.Unmarshal(env.Data, &skills))
	require.Len(t, skills, 1)
	assert.Equal(t, 10.0, skills[0].ProgressPercentage)
	assert.Greater(t, skills[0].TotalPoints, 0)
}

func TestGetSoftSkillEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	w, env := f.do(t, http.MethodGet, fmt.Sprintf("/soft-skills/%d", f.skill.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var skill model.SoftSkillView
	require.NoError(t, json.Unmarshal(env.Data, &skill))
	assert.Equal(t, f.skill.Name, skill.Name)
}

func TestGetSoftSkillNotFound(t *testing.T) {
	f := newRouterFixture(t)

	w, _ := f.do(t, http.MethodGet, "/soft-skills/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSoftSkillInvalidID(t *testing.T) {
	f := newRouterFixture(t)

	w, _ := f.do(t, http.MethodGet, "/soft-skills/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListScenariosEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	unpopular := model.SoftSkillScenario{
		SoftSkillID:              f.skill.ID,
		Title:                    "Presenting to stakeholders",
		DifficultyLevel:          4,
		EstimatedDurationMinutes: 30,
		IsActive:                 true,
	}
	require.NoError(t, f.db.Create(&unpopular).Error)

	w, env := f.do(t, http.MethodGet, fmt.Sprintf("/soft-skills/%d/scenarios", f.skill.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var scenarios []model.ScenarioView
	require.NoError(t, json.Unmarshal(env.Data, &scenarios))
	assert.Len(t, scenarios, 2)

	w, env = f.do(t, http.MethodGet, fmt.Sprintf("/soft-skills/%d/scenarios?include_popular_only=true", f.skill.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &scenarios))
	require.Len(t, scenarios, 1)
	assert.True(t, scenarios[0].IsPopular)
}

func TestListScenariosUnknownSkill(t *testing.T) {
	f := newRouterFixture(t)

	w, _ := f.do(t, http.MethodGet, "/soft-skills/999/scenarios", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
