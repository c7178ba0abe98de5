package pipeline

import (
	"testing"

	"interview-ai/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, payload string) any {
	t.Helper()
	parsed, err := parsePayload(payload)
	require.NoError(t, err)
	return parsed
}

func TestParsePayload_Invalid(t *testing.T) {
	_, err := parsePayload(`[{question: "unquoted key"}]`)
	require.Error(t, err)
	assert.Equal(t, ParseFailed, KindOf(err))
}

func TestRepairQuestions(t *testing.T) {
	parsed := mustParse(t, `[
		{"question": "What is a goroutine?", "difficulty": "easy", "topic": "Concurrency"},
		{"question": "   "},
		{"topic": "no question"},
		"not an object",
		{"question": "How do maps grow?", "difficulty": "expert"}
	]`)

	got, err := repairQuestions(parsed, "Go", domain.DifficultyHard, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.InterviewQuestion{
		{Text: "What is a goroutine?", Difficulty: domain.DifficultyHard, Topic: "Concurrency"},
		{Text: "How do maps grow?", Difficulty: domain.DifficultyHard, Topic: "Go"},
	}, got)
}

func TestRepairQuestions_TruncatesToCount(t *testing.T) {
	parsed := mustParse(t, `[{"question":"Q1"},{"question":"Q2"},{"question":"Q3"}]`)

	got, err := repairQuestions(parsed, "Go", domain.DifficultyEasy, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Q2", got[1].Text)
}

func TestRepairQuestions_ValidationFailed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"object instead of array", `{"question": "Q1"}`},
		{"empty array", `[]`},
		{"nothing usable", `[{"question": ""}, {"topic": "x"}, 42]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repairQuestions(mustParse(t, tt.payload), "Go", domain.DifficultyMedium, 5)
			require.Error(t, err)
			assert.Equal(t, ValidationFailed, KindOf(err))
		})
	}
}

func TestRepairEvaluation_WellFormed(t *testing.T) {
	parsed := mustParse(t, `{
		"score": 8,
		"feedback": "Clear and accurate.",
		"strengths": ["s1", "s2", "s3"],
		"improvements": ["i1", "i2", "i3"],
		"confidenceTips": ["t1", "t2", "t3"]
	}`)

	got, repairs, err := repairEvaluation(parsed, "some answer")
	require.NoError(t, err)
	assert.Empty(t, repairs)
	assert.Equal(t, domain.AnswerEvaluation{
		Score:          8,
		Feedback:       "Clear and accurate.",
		Strengths:      []string{"s1", "s2", "s3"},
		Improvements:   []string{"i1", "i2", "i3"},
		ConfidenceTips: []string{"t1", "t2", "t3"},
	}, got)
	assert.NoError(t, checkEvaluation(parsed))
}

func TestRepairEvaluation_Score(t *testing.T) {
	answer := "A closure captures variables from its scope." // 44 chars, heuristic 4

	tests := []struct {
		name       string
		score      string
		want       int
		wantRepair bool
	}{
		{"integer", `7`, 7, false},
		{"rounds half up", `7.5`, 8, false},
		{"rounds down", `6.2`, 6, false},
		{"zero", `0`, 0, false},
		{"ten", `10`, 10, false},
		{"above range is not clamped", `15`, 4, true},
		{"negative", `-1`, 4, true},
		{"string", `"9"`, 4, true},
		{"null", `null`, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := mustParse(t, `{"score": `+tt.score+`, "feedback": "f"}`)
			got, repairs, err := repairEvaluation(parsed, answer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Score)
			if tt.wantRepair {
				assert.Contains(t, repairs, "score")
			} else {
				assert.NotContains(t, repairs, "score")
			}
		})
	}
}

func TestRepairEvaluation_MissingFields(t *testing.T) {
	got, repairs, err := repairEvaluation(mustParse(t, `{"score": 5}`), "answer")
	require.NoError(t, err)

	assert.Equal(t, 5, got.Score)
	assert.Equal(t, genericFeedback, got.Feedback)
	assert.Equal(t, genericStrengths, got.Strengths)
	assert.Equal(t, genericImprovements, got.Improvements)
	assert.Equal(t, genericConfidenceTips, got.ConfidenceTips)
	assert.ElementsMatch(t, []string{"feedback", "strengths", "improvements", "confidenceTips"}, repairs)
	assert.Error(t, checkEvaluation(mustParse(t, `{"score": 5}`)))
}

func TestRepairEvaluation_NotAnObject(t *testing.T) {
	_, _, err := repairEvaluation(mustParse(t, `[1, 2, 3]`), "answer")
	require.Error(t, err)
	assert.Equal(t, ParseFailed, KindOf(err))
}

func TestRepairList(t *testing.T) {
	generic := []string{"g1", "g2", "g3"}

	tests := []struct {
		name      string
		value     string
		want      []string
		wantFixed bool
	}{
		{"exact", `["a", "b", "c"]`, []string{"a", "b", "c"}, false},
		{"padded", `["a"]`, []string{"a", "g1", "g2"}, true},
		{"truncated", `["a", "b", "c", "d", "e"]`, []string{"a", "b", "c"}, true},
		{"empty", `[]`, generic, true},
		{"missing", `null`, generic, true},
		{"not a list", `"a, b, c"`, generic, true},
		{"bad items dropped", `[1, "", "a", {"x": 1}]`, []string{"a", "g1", "g2"}, true},
		{"padding skips duplicates", `["g1", "b"]`, []string{"g1", "b", "g2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fixed := repairList(mustParse(t, tt.value), generic)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFixed, fixed)
		})
	}
}

func TestRepairList_DoesNotShareGenericSlice(t *testing.T) {
	got, _ := repairList(nil, genericStrengths)
	got[0] = "changed"
	assert.NotEqual(t, "changed", genericStrengths[0])
}
