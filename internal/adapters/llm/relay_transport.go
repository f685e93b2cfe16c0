package llm

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/udityamerit/portfolio-assistant/internal/domain"
)

// RelayTransport sends the exchange to the same-origin relay service,
// which holds the real provider credential.
type RelayTransport struct {
	client *resty.Client
}

func NewRelayTransport(relayURL string) *RelayTransport {
	return &RelayTransport{
		client: resty.New().SetBaseURL(relayURL),
	}
}

type relayRequest struct {
	History     []wireTurn `json:"history"`
	UserMessage string     `json:"userMessage"`
	Prompt      string     `json:"prompt"`
}

type relayResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func (t *RelayTransport) Generate(ctx context.Context, prompt string, history []domain.HistoryTurn, userText string) (string, error) {
	var out relayResponse
	res, err := t.client.R().
		SetContext(ctx).
		SetBody(relayRequest{
			History:     toWireHistory(history),
			UserMessage: userText,
			Prompt:      prompt,
		}).
		SetResult(&out).
		SetError(&out).
		Post("/api/chat")
	if err != nil {
		return "", fmt.Errorf("calling relay: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("relay returned %d: %s", res.StatusCode(), out.Error)
	}
	if out.Response == "" {
		return "", fmt.Errorf("relay returned empty response")
	}
	return out.Response, nil
}
