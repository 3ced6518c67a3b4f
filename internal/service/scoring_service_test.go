package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDeterministicWithFixedSeed(t *testing.T) {
	input := "I understand your concern, could you clarify?"

	a := NewScoringService(rand.New(rand.NewSource(42)))
	b := NewScoringService(rand.New(rand.NewSource(42)))

	assert.Equal(t, a.Score(input), b.Score(input))
}

func TestScoreHeuristics(t *testing.T) {
	s := NewScoringService(rand.New(rand.NewSource(1)))

	scores := s.Score("I understand your concern, could you clarify?")

	assert.Equal(t, 3, scores.ClarityScore, "7 words is under the 20-word threshold")
	assert.Equal(t, 4, scores.EmpathyScore)
	assert.Equal(t, 4, scores.AssertivenessScore)
	assert.Equal(t, 4, scores.ListeningScore)
	assert.GreaterOrEqual(t, scores.ConfidenceScore, 2)
	assert.LessOrEqual(t, scores.ConfidenceScore, 4)

	expected := float64(3+4+4+4+scores.ConfidenceScore) / 5
	assert.InDelta(t, expected, scores.OverallScore, 0.051)
}

func TestScoreEmpathyIsCaseInsensitive(t *testing.T) {
	s := NewScoringService(rand.New(rand.NewSource(1)))

	scores := s.Score("We all UNDERSTAND the problem here.")
	assert.Equal(t, 4, scores.EmpathyScore)
	assert.Equal(t, 3, scores.AssertivenessScore, "no first-person marker in the input")
}

func TestScoreLongInputRaisesClarity(t *testing.T) {
	s := NewScoringService(rand.New(rand.NewSource(1)))

	long := ""
	for i := 0; i < 25; i++ {
		long += fmt.Sprintf("word%d ", i)
	}

	scores := s.Score(long)
	assert.Equal(t, 4, scores.ClarityScore)
}

func TestScoreAlwaysInBounds(t *testing.T) {
	s := NewScoringService(rand.New(rand.NewSource(99)))

	inputs := []string{
		"",
		"no",
		"I understand? I understand? I understand? I understand? I understand? I understand? I understand?",
		"short answer without any markers at all",
	}

	for _, input := range inputs {
		for i := 0; i < 50; i++ {
			scores := s.Score(input)
			for _, v := range []int{
				scores.ClarityScore,
				scores.EmpathyScore,
				scores.AssertivenessScore,
				scores.ListeningScore,
				scores.ConfidenceScore,
			} {
				assert.GreaterOrEqual(t, v, 1)
				assert.LessOrEqual(t, v, 5)
			}
			assert.GreaterOrEqual(t, scores.OverallScore, 1.0)
			assert.LessOrEqual(t, scores.OverallScore, 5.0)
		}
	}
}

func TestPoints(t *testing.T) {
	s := NewScoringService(rand.New(rand.NewSource(1)))

	assert.Equal(t, 10, s.Points(3.0))
	assert.Equal(t, 16, s.Points(5.0))
	assert.Equal(t, 3, s.Points(1.0))
	assert.Equal(t, 0, s.Points(0))
	assert.Equal(t, 11, s.Points(3.4))
}
