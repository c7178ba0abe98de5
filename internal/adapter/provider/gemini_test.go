package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func geminiTextResponse(text string, finish string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  "model",
					Parts: []*genai.Part{{Text: text}},
				},
				FinishReason: genai.FinishReason(finish),
			},
		},
	}
}

func TestInterpretGeminiResponse(t *testing.T) {
	tests := []struct {
		name       string
		resp       *genai.GenerateContentResponse
		err        error
		wantKind   ResultKind
		wantText   string
		wantReason string
	}{
		{
			name:     "text",
			resp:     geminiTextResponse(`[{"question":"What is a goroutine?"}]`, "STOP"),
			wantKind: KindText,
			wantText: `[{"question":"What is a goroutine?"}]`,
		},
		{
			name:     "transport error",
			err:      errors.New("connection refused"),
			wantKind: KindUnavailable,
		},
		{
			name:     "nil response",
			wantKind: KindEmpty,
		},
		{
			name: "prompt blocked",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
					BlockReason:        genai.BlockedReason("SAFETY"),
					BlockReasonMessage: "unsafe",
				},
			},
			wantKind:   KindBlocked,
			wantReason: "SAFETY: unsafe",
		},
		{
			name:       "candidate withheld",
			resp:       geminiTextResponse("", "SAFETY"),
			wantKind:   KindBlocked,
			wantReason: "finish reason SAFETY",
		},
		{
			name:     "whitespace only",
			resp:     geminiTextResponse("  \n\t ", "STOP"),
			wantKind: KindEmpty,
		},
		{
			name:     "no candidates",
			resp:     &genai.GenerateContentResponse{},
			wantKind: KindEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpretGeminiResponse(tt.resp, tt.err)
			assert.Equal(t, tt.wantKind, got.Kind)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, got.Text)
			}
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, got.Reason)
			}
			if tt.wantKind == KindUnavailable {
				assert.Error(t, got.Err)
			}
		})
	}
}

func TestGeminiConfig(t *testing.T) {
	cfg := geminiConfig(QuestionParams)

	require.NotNil(t, cfg.Temperature)
	require.NotNil(t, cfg.TopP)
	assert.InDelta(t, 0.7, *cfg.Temperature, 0.0001)
	assert.InDelta(t, 0.95, *cfg.TopP, 0.0001)
	assert.Equal(t, int32(8192), cfg.MaxOutputTokens)
	assert.Len(t, cfg.SafetySettings, 4)
	for _, s := range cfg.SafetySettings {
		assert.Equal(t, genai.HarmBlockThresholdBlockNone, s.Threshold)
	}
}

func TestNewGeminiGateway_RequiresKey(t *testing.T) {
	gw, err := NewGeminiGateway(context.Background(), "", "", nil)
	assert.Error(t, err)
	assert.Nil(t, gw)
}
