package domain

import "context"

// CompletionClient produces the assistant's answer for a general query.
// Implementations absorb every failure mode internally: the returned text
// is always non-empty and the labels always say where it came from, so
// callers never need their own error handling.
type CompletionClient interface {
	Complete(ctx context.Context, userText string, history []HistoryTurn) (string, []string)
}

// FactGatherer collects best-effort live context for the model prompt.
// Gather never fails; unreachable sources simply drop out of the bundle.
type FactGatherer interface {
	Gather(ctx context.Context) FactBundle
}

// ReplyGenerator is the relay's port to the model provider.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt string, history []HistoryTurn) (string, error)
}

// MessageStore defines message's persistence for the session log.
type MessageStore interface {
	AppendMessage(msg *Message) error
	GetMessagesBySession(sessionID SessionID, limit int) ([]*Message, error)
}
