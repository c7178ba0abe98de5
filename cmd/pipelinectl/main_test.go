package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "LLM_SERVER", "APP_LLM_PROVIDER"} {
		t.Setenv(env, "")
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQuestionsCommand_Offline(t *testing.T) {
	out, err := runCmd(t, "questions", "--offline", "--skill", "Python", "--difficulty", "hard", "--count", "3")
	require.NoError(t, err)

	var got struct {
		Provider string `json:"provider"`
		Outcome  struct {
			State   string `json:"state"`
			Failure string `json:"failure"`
		} `json:"outcome"`
		Questions []struct {
			Question   string `json:"question"`
			Difficulty string `json:"difficulty"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "none", got.Provider)
	assert.Equal(t, "fallback_delivered", got.Outcome.State)
	assert.Equal(t, "not_configured", got.Outcome.Failure)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, "hard", got.Questions[0].Difficulty)
}

func TestQuestionsCommand_BadDifficulty(t *testing.T) {
	_, err := runCmd(t, "questions", "--offline", "--skill", "Go", "--difficulty", "expert")
	assert.Error(t, err)
}

func TestEvaluateCommand_Offline(t *testing.T) {
	out, err := runCmd(t, "evaluate", "--offline", "--question", "What is a closure?", "--answer", "A function with captured state.", "--skill", "JavaScript")
	require.NoError(t, err)

	var got struct {
		Evaluation struct {
			Score          int      `json:"score"`
			ConfidenceTips []string `json:"confidenceTips"`
		} `json:"evaluation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Evaluation.Score)
	assert.Len(t, got.Evaluation.ConfidenceTips, 3)
}

func TestEvaluateCommand_EmptyAnswer(t *testing.T) {
	_, err := runCmd(t, "evaluate", "--offline", "--question", "Q", "--answer", "   ")
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")
	out, err := runCmd(t, "token", "--user", "user-1", "--name", "Ada")
	require.NoError(t, err)
	assert.Regexp(t, `^[\w-]+\.[\w-]+\.[\w-]+\n$`, out)
}
