package pipeline

import (
	"testing"

	"interview-ai/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuestionsPrompt(t *testing.T) {
	prompt := BuildQuestionsPrompt("Go", domain.DifficultyHard, 7)

	assert.Contains(t, prompt, "Generate 7 technical interview questions for Go at hard difficulty level.")
	assert.Contains(t, prompt, `"difficulty": "hard"`)
	assert.Contains(t, prompt, "Return ONLY the JSON array")
	assert.Equal(t, prompt, BuildQuestionsPrompt("Go", domain.DifficultyHard, 7))
	assert.NotEqual(t, prompt, BuildQuestionsPrompt("Go", domain.DifficultyHard, 6))
}

func TestBuildQuestionsPrompt_CountLowerBound(t *testing.T) {
	assert.Contains(t, BuildQuestionsPrompt("Go", domain.DifficultyEasy, 0), "Generate 1 technical")
	assert.Contains(t, BuildQuestionsPrompt("Go", domain.DifficultyEasy, -4), "Generate 1 technical")
}

func TestBuildEvaluationPrompt(t *testing.T) {
	prompt := BuildEvaluationPrompt("What is a closure?", "A function with its environment", "JavaScript")

	assert.Contains(t, prompt, `Question: "What is a closure?"`)
	assert.Contains(t, prompt, `Candidate's Answer: "A function with its environment"`)
	assert.Contains(t, prompt, "Skill Domain: JavaScript")
	for _, band := range []string{"0-2:", "3-4:", "5-6:", "7-8:", "9-10:"} {
		assert.Contains(t, prompt, band)
	}
	assert.Contains(t, prompt, `"confidenceTips"`)
	assert.Equal(t, prompt, BuildEvaluationPrompt("What is a closure?", "A function with its environment", "JavaScript"))
}

func TestBuildEvaluationPrompt_EscapesQuotes(t *testing.T) {
	prompt := BuildEvaluationPrompt(`Why "defer"?`, `It runs "later" \ at return`, "Go")

	assert.Contains(t, prompt, `Question: "Why \"defer\"?"`)
	assert.Contains(t, prompt, `Candidate's Answer: "It runs \"later\" \\ at return"`)
}
