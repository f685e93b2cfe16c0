package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/udityamerit/portfolio-assistant/internal/domain"
)

// GeminiClient is the relay's upstream: it talks to the Gemini API with
// the server-held key through the official SDK.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateReply implements domain.ReplyGenerator. The composed prompt
// already carries persona and live facts; the history rides along as
// conversation contents.
func (g *GeminiClient) GenerateReply(ctx context.Context, prompt string, history []domain.HistoryTurn) (string, error) {
	var contents []*genai.Content
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	temp := float32(0.7)
	topP := float32(0.95)

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: int32(1024),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}

	return text, nil
}
