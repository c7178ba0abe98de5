package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"interview-ai/internal/config"

	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	defaultOllamaModel    = "qwen3:0.6b"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-3-5-haiku-latest"
)

// NewFromConfig builds the configured gateway.
// It returns a nil Gateway and no error when no provider is configured.
func NewFromConfig(ctx context.Context, cfg config.LLMConfig) (Gateway, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var httpClient *http.Client
	if cfg.Timeout > 0 {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	switch cfg.Provider {
	case "gemini":
		return NewGeminiGateway(ctx, cfg.APIKey, cfg.Model, httpClient)

	case "ollama":
		model := modelOrDefault(cfg.Model, defaultOllamaModel)
		opts := []ollama.Option{
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(model),
		}
		if httpClient != nil {
			opts = append(opts, ollama.WithHTTPClient(httpClient))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewLangchainGateway("ollama/"+model, llm), nil

	case "openai":
		model := modelOrDefault(cfg.Model, defaultOpenAIModel)
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(model),
		}
		if httpClient != nil {
			opts = append(opts, openai.WithHTTPClient(httpClient))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewLangchainGateway("openai/"+model, llm), nil

	case "anthropic":
		model := modelOrDefault(cfg.Model, defaultAnthropicModel)
		llm, err := anthropic.New(
			anthropic.WithToken(cfg.APIKey),
			anthropic.WithModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewLangchainGateway("anthropic/"+model, llm), nil
	}

	return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
}

func modelOrDefault(model, fallback string) string {
	if model == "" {
		return fallback
	}
	return model
}
