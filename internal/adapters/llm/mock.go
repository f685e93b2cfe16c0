package llm

import (
	"context"
	"fmt"

	"github.com/udityamerit/portfolio-assistant/internal/domain"
)

// MockTransport answers locally. Useful for developing the assistant
// without a relay or an API key.
type MockTransport struct{}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) Generate(ctx context.Context, prompt string, history []domain.HistoryTurn, userText string) (string, error) {
	return fmt.Sprintf("(mock) You asked %q; the conversation has %d prior turns.", userText, len(history)), nil
}

// MockGenerator is the relay-side counterpart for tests and local runs.
type MockGenerator struct {
	Reply string
	Err   error
}

func (m *MockGenerator) GenerateReply(ctx context.Context, prompt string, history []domain.HistoryTurn) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	return "Message received", nil
}
