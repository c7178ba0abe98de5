package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel records the call options it receives and returns a canned response.
type fakeModel struct {
	resp *llms.ContentResponse
	err  error
	opts llms.CallOptions
	msgs []llms.MessageContent
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.msgs = messages
	for _, o := range options {
		o(&f.opts)
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func choiceResponse(content, stop string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: content, StopReason: stop}},
	}
}

func TestLangchainGateway_Generate(t *testing.T) {
	model := &fakeModel{resp: choiceResponse(`{"score":7}`, "stop")}
	gw := NewLangchainGateway("ollama/test", model)

	got := gw.Generate(context.Background(), "evaluate this", EvaluationParams)

	require.True(t, got.OK())
	assert.Equal(t, `{"score":7}`, got.Text)
	assert.Equal(t, "ollama/test", gw.Name())
	assert.InDelta(t, 0.3, model.opts.Temperature, 0.0001)
	assert.InDelta(t, 0.9, model.opts.TopP, 0.0001)
	assert.Equal(t, 2048, model.opts.MaxTokens)
	require.Len(t, model.msgs, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.msgs[0].Role)
}

func TestLangchainGateway_NilModel(t *testing.T) {
	gw := NewLangchainGateway("none", nil)
	got := gw.Generate(context.Background(), "x", QuestionParams)
	assert.Equal(t, KindUnavailable, got.Kind)
}

func TestInterpretLangchainResponse(t *testing.T) {
	tests := []struct {
		name     string
		resp     *llms.ContentResponse
		err      error
		wantKind ResultKind
	}{
		{"text", choiceResponse("hello", "stop"), nil, KindText},
		{"error", nil, errors.New("boom"), KindUnavailable},
		{"deadline", nil, fmt.Errorf("wrapped: %w", context.DeadlineExceeded), KindUnavailable},
		{"no choices", &llms.ContentResponse{}, nil, KindEmpty},
		{"nil response", nil, nil, KindEmpty},
		{"blank content", choiceResponse("   ", "stop"), nil, KindEmpty},
		{"content filter", choiceResponse("", "content_filter"), nil, KindBlocked},
		{"refusal", choiceResponse("I can't help", "refusal"), nil, KindBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpretLangchainResponse(tt.resp, tt.err)
			assert.Equal(t, tt.wantKind, got.Kind)
		})
	}
}
