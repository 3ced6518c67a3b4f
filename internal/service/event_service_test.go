package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventServiceDisabledWithoutURL(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	// BaseURL deliberately left empty: the publisher is feature-flagged off.
	events := NewEventService(config.EventBusConfig{TimeoutSeconds: time.Second})

	events.PublishPracticeStarted(context.Background(), "user-1", "session-1", 1, 2)
	events.PublishPracticeCompleted(context.Background(), "user-1", "session-1", 1, 2, 4.0, 13, 60)
	events.PublishProgressUpdated(context.Background(), "user-1", 1, 0, 10, 13)
	events.PublishMilestoneAchieved(context.Background(), "user-1", 1, "first_practice", 1)

	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestPublishPracticeCompletedPayload(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events/publish", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
	}))
	defer srv.Close()

	events := NewEventService(config.EventBusConfig{BaseURL: srv.URL, TimeoutSeconds: time.Second})
	events.PublishPracticeCompleted(context.Background(), "user-1", "session-1", 3, 7, 4.2, 14, 90)

	require.NotNil(t, captured)
	assert.Equal(t, "practice.completed", captured["topic"])

	event, ok := captured["event"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "practice_completed", event["event_type"])
	assert.Equal(t, "user-1", event["user_id"])
	assert.Equal(t, "session-1", event["session_id"])

	metadata, ok := event["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 4.2, metadata["overall_score"])
	assert.Equal(t, float64(14), metadata["points_earned"])
}

func TestPublishFailureIsDiscarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	events := NewEventService(config.EventBusConfig{BaseURL: srv.URL, TimeoutSeconds: time.Second})

	assert.NotPanics(t, func() {
		events.PublishPracticeStarted(context.Background(), "user-1", "session-1", 1, 2)
	})
}
