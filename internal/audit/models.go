package audit

import "time"

// Event is one journal record describing a handled call turn.
//
// The journal is incidental: it exists for operator visibility only, and no
// caller-facing behavior depends on it. Records are append-only.
type Event struct {
	ID     string `json:"id"`
	CallID string `json:"call_id"`
	From   string `json:"from,omitempty"`

	// Kind indicates how the turn was classified.
	Kind EventKind `json:"kind"`

	// Message is the spoken reply that was rendered for the turn.
	Message string `json:"message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type EventKind string

const (
	EventKindGreeting EventKind = "greeting"
	EventKindSpeech   EventKind = "speech"
	EventKindDigits   EventKind = "digits"
	EventKindApology  EventKind = "apology"
)
