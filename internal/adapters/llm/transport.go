package llm

import (
	"context"

	"github.com/udityamerit/portfolio-assistant/internal/domain"
)

// Transport submits a composed prompt, the prior conversation and the new
// user question to whatever sits between us and the model: the same-origin
// relay or the provider itself. Chosen once at construction, never per
// call.
type Transport interface {
	Generate(ctx context.Context, prompt string, history []domain.HistoryTurn, userText string) (string, error)
}

// wireTurn mirrors the provider's history shape:
// {role, parts: [{text}]}.
type wireTurn struct {
	Role  string     `json:"role"`
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text string `json:"text"`
}

func toWireHistory(history []domain.HistoryTurn) []wireTurn {
	out := make([]wireTurn, 0, len(history))
	for _, t := range history {
		out = append(out, wireTurn{
			Role:  string(t.Role),
			Parts: []wirePart{{Text: t.Content}},
		})
	}
	return out
}
