package domain

import "time"

type MessageID string
type SessionID string

type Origin string

const (
	OriginUser      Origin = "user"
	OriginAssistant Origin = "assistant"
)

// Role is the wire-level role used when talking to the model provider.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Timestamp = time.Time
