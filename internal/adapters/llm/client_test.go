package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udityamerit/portfolio-assistant/internal/adapters/llm"
	"github.com/udityamerit/portfolio-assistant/internal/domain"
	"github.com/udityamerit/portfolio-assistant/internal/profile"
)

type stubGatherer struct {
	bundle domain.FactBundle
}

func (s stubGatherer) Gather(ctx context.Context) domain.FactBundle {
	return s.bundle
}

type stubTransport struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubTransport) Generate(ctx context.Context, prompt string, history []domain.HistoryTurn, userText string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestCompleteSuccess(t *testing.T) {
	gatherer := stubGatherer{bundle: domain.FactBundle{
		Narrative: "GitHub Profile: builder of things.",
		Sources:   []string{"GitHub API", profile.StaticBlurbLabel},
	}}
	transport := &stubTransport{reply: "Here is what he built."}
	client := llm.NewClient(transport, gatherer)

	reply, sources := client.Complete(context.Background(), "what did he build?", nil)

	assert.Equal(t, "Here is what he built.", reply)
	assert.Equal(t, []string{"GitHub API", profile.StaticBlurbLabel}, sources)
	assert.Contains(t, transport.lastPrompt, "LIVE DATA CONTEXT:\nGitHub Profile: builder of things.")
	assert.Contains(t, transport.lastPrompt, profile.Name)
}

func TestCompleteTransportFailureFallsBack(t *testing.T) {
	gatherer := stubGatherer{bundle: domain.FactBundle{
		Narrative: profile.StaticBlurb,
		Sources:   []string{profile.StaticBlurbLabel},
	}}
	transport := &stubTransport{err: errors.New("upstream 500")}
	client := llm.NewClient(transport, gatherer)

	reply, sources := client.Complete(context.Background(), "what did he build?", nil)

	assert.Equal(t, profile.FallbackReply, reply)
	assert.Equal(t, []string{profile.FallbackLabel}, sources, "exactly the error-class label")
	assert.NotEmpty(t, reply)
}
