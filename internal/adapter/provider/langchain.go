package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Stop reasons reported by langchaingo backends when output was filtered
var langchainBlockedStopReasons = map[string]bool{
	"content_filter": true,
	"safety":         true,
	"refusal":        true,
}

// LangchainGateway implements Gateway on top of any langchaingo model
// (ollama, openai, anthropic).
type LangchainGateway struct {
	model llms.Model
	name  string
}

// NewLangchainGateway wraps an already constructed langchaingo model
func NewLangchainGateway(name string, model llms.Model) *LangchainGateway {
	return &LangchainGateway{model: model, name: name}
}

func (g *LangchainGateway) Name() string {
	return g.name
}

func (g *LangchainGateway) Generate(ctx context.Context, prompt string, params Params) Result {
	if g.model == nil {
		return Unavailable(errors.New("langchain model not initialized"))
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	opts := []llms.CallOption{llms.WithTemperature(params.Temperature)}
	if params.TopP > 0 {
		opts = append(opts, llms.WithTopP(params.TopP))
	}
	if params.MaxOutputTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(params.MaxOutputTokens))
	}

	resp, err := g.model.GenerateContent(ctx, messages, opts...)
	return interpretLangchainResponse(resp, err)
}

func interpretLangchainResponse(resp *llms.ContentResponse, err error) Result {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Unavailable(fmt.Errorf("LLM request timed out: %w", err))
		}
		return Unavailable(fmt.Errorf("LLM call failed: %w", err))
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return Empty()
	}

	choice := resp.Choices[0]
	if langchainBlockedStopReasons[strings.ToLower(choice.StopReason)] {
		return Blocked("stop reason " + choice.StopReason)
	}
	return Text(choice.Content)
}
