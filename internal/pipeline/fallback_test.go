package pipeline

import (
	"strings"
	"testing"

	"interview-ai/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackQuestions_SupportedSkills(t *testing.T) {
	for _, skill := range SupportedSkills() {
		t.Run(skill, func(t *testing.T) {
			got := FallbackQuestions(skill, domain.DifficultyEasy, 5)
			require.Len(t, got, 5)
			for i, q := range got {
				assert.Equal(t, fallbackQuestionTable[skill][i].text, q.Text)
				assert.Equal(t, domain.DifficultyEasy, q.Difficulty)
				assert.NotEmpty(t, q.Topic)
			}
		})
	}
}

func TestFallbackQuestions_Count(t *testing.T) {
	assert.Len(t, FallbackQuestions("Python", domain.DifficultyMedium, 3), 3)
	assert.Len(t, FallbackQuestions("Python", domain.DifficultyMedium, 10), 5)
	assert.Len(t, FallbackQuestions("Python", domain.DifficultyMedium, 0), 1)
}

func TestFallbackQuestions_CaseInsensitiveLookup(t *testing.T) {
	got := FallbackQuestions(" node.JS ", domain.DifficultyHard, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Event Loop", got[0].Topic)
}

func TestFallbackQuestions_GenericTemplate(t *testing.T) {
	got := FallbackQuestions("Rust", domain.DifficultyHard, 5)
	require.Len(t, got, 5)
	for _, q := range got {
		assert.Contains(t, q.Text, "Rust")
		assert.Equal(t, "Rust", q.Topic)
		assert.Equal(t, domain.DifficultyHard, q.Difficulty)
	}
}

func TestHeuristicScore(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"empty", "", 2},
		{"five chars", "maybe", 2},
		{"twenty chars", strings.Repeat("a", 20), 2},
		{"twenty one chars", strings.Repeat("a", 21), 4},
		{"hundred chars", strings.Repeat("a", 100), 4},
		{"hundred one chars", strings.Repeat("a", 101), 6},
		{"padding is ignored", "   " + strings.Repeat("a", 20) + "   ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeuristicScore(tt.answer))
		})
	}
}

func TestFallbackEvaluation(t *testing.T) {
	for _, answer := range []string{"maybe", strings.Repeat("b", 50), strings.Repeat("c", 150)} {
		eval := FallbackEvaluation(answer)
		assert.NotEmpty(t, eval.Feedback)
		assert.Len(t, eval.Strengths, domain.EvaluationListSize)
		assert.Len(t, eval.Improvements, domain.EvaluationListSize)
		assert.Len(t, eval.ConfidenceTips, domain.EvaluationListSize)
		assert.GreaterOrEqual(t, eval.Score, 0)
		assert.LessOrEqual(t, eval.Score, domain.MaxScore)
	}

	short := FallbackEvaluation("maybe")
	assert.Equal(t, "Acknowledged the question", short.Strengths[0])

	long := FallbackEvaluation(strings.Repeat("c", 150))
	assert.Equal(t, "Attempted to answer the question", long.Strengths[0])
	assert.Contains(t, long.Feedback, "demonstrates understanding")
}
