package service

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/javier223222/soft-skills-practice-api/internal/model"
)

const scoringBase = 3

// ScoringService is a deterministic heuristic scorer standing in for a real
// response analyzer. The confidence jitter is its only random term; the
// source is injected so tests can fix the seed.
type ScoringService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScoringService(rng *rand.Rand) *ScoringService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ScoringService{rng: rng}
}

// Score maps free-text input to the five 1-5 metric scores plus the rounded
// overall average.
func (s *ScoringService) Score(userInput string) model.ScoreBreakdown {
	wordCount := len(strings.Fields(userInput))

	clarity := clampScore(scoringBase + boolToBonus(wordCount > 20))
	empathy := clampScore(scoringBase + boolToBonus(strings.Contains(strings.ToLower(userInput), "understand")))
	assertiveness := clampScore(scoringBase + boolToBonus(strings.Contains(userInput, "I")))
	listening := clampScore(scoringBase + boolToBonus(strings.Contains(userInput, "?")))
	confidence := clampScore(scoringBase + s.jitter())

	overall := float64(clarity+empathy+assertiveness+listening+confidence) / 5
	overall = math.Round(overall*10) / 10

	return model.ScoreBreakdown{
		ClarityScore:       clarity,
		EmpathyScore:       empathy,
		AssertivenessScore: assertiveness,
		ListeningScore:     listening,
		ConfidenceScore:    confidence,
		OverallScore:       overall,
	}
}

// Points converts the overall score into earned points:
// floor(10 * overall / 3).
func (s *ScoringService) Points(overallScore float64) int {
	points := int(10 * overallScore / 3.0)
	if points < 0 {
		return 0
	}
	return points
}

// jitter draws uniformly from {-1, 0, +1}.
func (s *ScoringService) jitter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(3) - 1
}

func clampScore(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

func boolToBonus(b bool) int {
	if b {
		return 1
	}
	return 0
}
