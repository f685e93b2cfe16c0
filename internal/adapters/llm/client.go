// Package llm implements the remote completion path: prompt assembly,
// the relay and direct provider transports, and the client that collapses
// every failure into a usable fallback answer.
package llm

import (
	"context"

	"github.com/udityamerit/portfolio-assistant/internal/domain"
	"github.com/udityamerit/portfolio-assistant/internal/observability"
	"github.com/udityamerit/portfolio-assistant/internal/profile"
)

// Client implements domain.CompletionClient. It never returns an error:
// any transport failure degrades to the fixed profile fallback so the
// composer has no error handling of its own.
type Client struct {
	transport Transport
	gatherer  domain.FactGatherer
}

func NewClient(transport Transport, gatherer domain.FactGatherer) *Client {
	return &Client{transport: transport, gatherer: gatherer}
}

func (c *Client) Complete(ctx context.Context, userText string, history []domain.HistoryTurn) (string, []string) {
	log := observability.LoggerFromContext(ctx)

	facts := c.gatherer.Gather(ctx)
	prompt := BuildPrompt(facts.Narrative)

	reply, err := c.transport.Generate(ctx, prompt, history, userText)
	if err != nil {
		log.Warn("completion failed, returning fallback", "error", err)
		return profile.FallbackReply, []string{profile.FallbackLabel}
	}

	return reply, facts.Sources
}
