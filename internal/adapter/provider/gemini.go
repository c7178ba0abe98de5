package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-flash"

// Finish reasons that mean the candidate was withheld by a safety or policy filter
var geminiBlockedFinishReasons = map[string]bool{
	"SAFETY":             true,
	"RECITATION":         true,
	"BLOCKLIST":          true,
	"PROHIBITED_CONTENT": true,
	"SPII":               true,
}

// GeminiGateway implements Gateway using the Google Gemini SDK.
type GeminiGateway struct {
	client *genai.Client
	model  string
}

// NewGeminiGateway creates a Gemini gateway. An optional httpClient replaces the SDK default.
func NewGeminiGateway(ctx context.Context, apiKey, model string, httpClient *http.Client) (*GeminiGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiGateway{client: client, model: model}, nil
}

func (g *GeminiGateway) Name() string {
	return "gemini/" + g.model
}

func (g *GeminiGateway) Generate(ctx context.Context, prompt string, params Params) Result {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), geminiConfig(params))
	return interpretGeminiResponse(resp, err)
}

func geminiConfig(params Params) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(params.MaxOutputTokens),
		// Interview content regularly mentions attacks, exploits and the like
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}
	if params.Temperature > 0 {
		temp := float32(params.Temperature)
		cfg.Temperature = &temp
	}
	if params.TopP > 0 {
		topP := float32(params.TopP)
		cfg.TopP = &topP
	}
	return cfg
}

// interpretGeminiResponse maps an SDK response onto the Result variants.
func interpretGeminiResponse(resp *genai.GenerateContentResponse, err error) Result {
	if err != nil {
		return Unavailable(fmt.Errorf("gemini generate content: %w", err))
	}
	if resp == nil {
		return Empty()
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		reason := string(fb.BlockReason)
		if fb.BlockReasonMessage != "" {
			reason += ": " + fb.BlockReasonMessage
		}
		return Blocked(reason)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		finish := strings.ToUpper(string(resp.Candidates[0].FinishReason))
		if geminiBlockedFinishReasons[finish] {
			return Blocked("finish reason " + finish)
		}
	}

	return Text(resp.Text())
}
