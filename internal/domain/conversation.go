package domain

// Message is a single entry in the conversation log (user or assistant).
// Messages are immutable once created and only ever appended.
type Message struct {
	ID        MessageID
	SessionID SessionID
	Origin    Origin
	Text      string
	CreatedAt Timestamp

	// Sources lists where an assistant reply came from ("Pre-defined",
	// "GitHub API", "Portfolio Data", ...). Empty for user messages.
	Sources []string
}

// HistoryTurn is the projection of a completed exchange that gets sent
// to the model provider as conversation context. Canned exchanges never
// become turns.
type HistoryTurn struct {
	Role    Role
	Content string
}

// FactBundle is the ephemeral enrichment gathered before a remote
// completion: a narrative to append to the prompt plus one provenance
// label per contributing source. Rebuilt on every escalation.
type FactBundle struct {
	Narrative string
	Sources   []string
}
