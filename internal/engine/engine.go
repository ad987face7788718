package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"voice-agent/internal/audit"
)

// TurnInput is the per-turn context re-POSTed by the telephony provider.
// At most one of SpeechText/Digits drives the response; both empty means the
// initial turn or a silence timeout.
type TurnInput struct {
	From       string
	CallID     string
	SpeechText string
	Digits     string
	CallStatus string
}

// Resolver produces an answer for caller speech. Must be total; see
// answer.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, question string) string
}

// Greeter produces a personalized greeting. Errors make the engine fall back
// to the canned greeting.
type Greeter interface {
	Greet(ctx context.Context, callerNumber string) (string, error)
}

const (
	cannedGreeting = "Hello and welcome to NextCore AI! We are Bangalore's leading digital " +
		"transformation company specializing in AI automation, web development, mobile " +
		"applications, and cloud services. How may I assist you today?"

	genericWelcome = "Welcome to NextCore AI. How can I help you today?"

	apologyMessage = "I apologize, but I'm experiencing technical difficulties. Please call back " +
		"later or contact us at nextcoreai.in@gmail.com or +91 6202579799."

	agentHandoffMessage = "Great! You've chosen to speak with our AI agent. Please tell me about " +
		"your requirements for NextCore AI services - whether it's AI automation, web " +
		"development, mobile apps, or cloud solutions."

	voicemailMessage = "Thank you for choosing to leave a message. Please speak after the beep " +
		"and tell us about your requirements. We'll get back to you within 24 hours."

	transferMessage = "Connecting you to our support team. Please hold on while we transfer your call."
)

// Engine decides what to say for one call turn. Stateless between turns:
// every decision is made from the TurnInput alone.
type Engine struct {
	resolver Resolver
	greeter  Greeter
	journal  *audit.Service
	log      *slog.Logger
}

func New(resolver Resolver, greeter Greeter, journal *audit.Service, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{resolver: resolver, greeter: greeter, journal: journal, log: log}
}

// Respond returns the spoken reply for the turn. It never returns an empty
// string and never panics outward: any failure while computing the message is
// replaced with the apology message so the call is never left without audio.
func (e *Engine) Respond(ctx context.Context, turn TurnInput) (message string) {
	kind := audit.EventKindGreeting

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("turn handling panicked", "call_id", turn.CallID, "panic", r)
			message = apologyMessage
			kind = audit.EventKindApology
		}
		if message == "" {
			message = apologyMessage
			kind = audit.EventKindApology
		}
		e.record(ctx, turn, kind, message)
	}()

	switch {
	case hasSpeech(turn.SpeechText):
		kind = audit.EventKindSpeech
		message = e.resolver.Resolve(ctx, strings.TrimSpace(turn.SpeechText))
	case strings.TrimSpace(turn.Digits) != "":
		kind = audit.EventKindDigits
		message = respondToDigits(strings.TrimSpace(turn.Digits))
	default:
		kind = audit.EventKindGreeting
		message = e.greet(ctx, turn.From)
	}
	return message
}

// Welcome is the reply for turns that fit none of the regular classes, such
// as an unsupported HTTP verb reaching the webhook.
func (e *Engine) Welcome() string { return genericWelcome }

// hasSpeech reports whether the transcript carries real caller speech.
// Providers occasionally post literal placeholder strings for empty results.
func hasSpeech(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "null", "undefined":
		return false
	}
	return true
}

// respondToDigits applies the fixed keypad menu.
func respondToDigits(digits string) string {
	switch digits {
	case "1":
		return agentHandoffMessage
	case "2":
		return voicemailMessage
	case "0":
		return transferMessage
	default:
		return fmt.Sprintf("You pressed %s. For AI services press 1, to leave a message press 2, "+
			"or speak directly about your requirements.", digits)
	}
}

func (e *Engine) greet(ctx context.Context, callerNumber string) string {
	if e.greeter != nil {
		text, err := e.greeter.Greet(ctx, callerNumber)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			e.log.Warn("greeting generation failed, using canned greeting", "err", err)
		}
	}
	return cannedGreeting
}

func (e *Engine) record(ctx context.Context, turn TurnInput, kind audit.EventKind, message string) {
	if e.journal == nil {
		return
	}
	e.journal.Record(ctx, audit.Event{
		CallID:  turn.CallID,
		From:    turn.From,
		Kind:    kind,
		Message: message,
	})
}
