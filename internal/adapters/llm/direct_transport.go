package llm

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"

	"github.com/udityamerit/portfolio-assistant/internal/domain"
)

const defaultProviderBaseURL = "https://generativelanguage.googleapis.com"

// DirectTransport calls the provider's generateContent endpoint with a
// client-held API key. Used in deployments without a relay in front.
type DirectTransport struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewDirectTransport(apiKey, model string) *DirectTransport {
	return NewDirectTransportWithBaseURL(apiKey, model, defaultProviderBaseURL)
}

// NewDirectTransportWithBaseURL allows pointing the transport at a stub
// provider in tests.
func NewDirectTransportWithBaseURL(apiKey, model, baseURL string) *DirectTransport {
	return &DirectTransport{
		client: resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
		model:  model,
	}
}

type generateRequest struct {
	Contents         []wireTurn       `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var defaultSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

func (t *DirectTransport) Generate(ctx context.Context, prompt string, history []domain.HistoryTurn, userText string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("provider api key is not configured")
	}

	// The direct endpoint takes a single flattened prompt: persona +
	// facts, prior turns, then the new question.
	var b strings.Builder
	b.WriteString(prompt)
	for _, turn := range history {
		b.WriteString("\n")
		b.WriteString(string(turn.Role))
		b.WriteString(": ")
		b.WriteString(turn.Content)
	}
	b.WriteString("\n\nUser Question: ")
	b.WriteString(userText)

	body := generateRequest{
		Contents: []wireTurn{
			{Role: string(domain.RoleUser), Parts: []wirePart{{Text: b.String()}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
		SafetySettings: defaultSafetySettings,
	}

	var out generateResponse
	res, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("key", t.apiKey).
		SetBody(body).
		SetResult(&out).
		Post("/v1beta/models/" + t.model + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("calling provider: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("provider returned %d", res.StatusCode())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("provider returned no candidates")
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("provider returned empty text")
	}
	return text, nil
}
