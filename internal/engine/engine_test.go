package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voice-agent/internal/audit"
)

type stubResolver struct {
	text  string
	panic bool
}

func (s stubResolver) Resolve(_ context.Context, q string) string {
	if s.panic {
		panic("resolver blew up")
	}
	if s.text != "" {
		return s.text
	}
	return "answer to " + q
}

type stubGreeter struct {
	text string
	err  error
}

func (s stubGreeter) Greet(context.Context, string) (string, error) { return s.text, s.err }

func newTestEngine(r Resolver, g Greeter, repo *audit.MemoryRepo) *Engine {
	var journal *audit.Service
	if repo != nil {
		journal = audit.NewService(repo, nil)
	}
	return New(r, g, journal, nil)
}

func TestRespondSpeech(t *testing.T) {
	e := newTestEngine(stubResolver{}, stubGreeter{}, nil)
	got := e.Respond(context.Background(), TurnInput{SpeechText: " What services do you offer? "})
	if got != "answer to What services do you offer?" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestRespondSpeechPlaceholders(t *testing.T) {
	e := newTestEngine(stubResolver{}, stubGreeter{text: "greeting"}, nil)
	for _, placeholder := range []string{"", "  ", "null", "NULL", "undefined"} {
		got := e.Respond(context.Background(), TurnInput{SpeechText: placeholder})
		if got != "greeting" {
			t.Fatalf("placeholder %q: expected greeting path, got %q", placeholder, got)
		}
	}
}

func TestRespondDigitsPolicy(t *testing.T) {
	e := newTestEngine(stubResolver{}, stubGreeter{}, nil)
	cases := []struct {
		digits string
		want   string
	}{
		{"1", "AI agent"},
		{"2", "leave a message"},
		{"0", "transfer your call"},
		{"5", "You pressed 5"},
	}
	for _, tc := range cases {
		got := e.Respond(context.Background(), TurnInput{Digits: tc.digits})
		if !strings.Contains(got, tc.want) {
			t.Fatalf("digits %q: expected %q in message, got %q", tc.digits, tc.want, got)
		}
	}
}

func TestRespondGreetingFallback(t *testing.T) {
	e := newTestEngine(stubResolver{}, stubGreeter{err: errors.New("llm down")}, nil)
	got := e.Respond(context.Background(), TurnInput{From: "+911234567890"})
	if got != cannedGreeting {
		t.Fatalf("expected canned greeting, got %q", got)
	}
}

func TestRespondGreetingFromLLM(t *testing.T) {
	e := newTestEngine(stubResolver{}, stubGreeter{text: "Hi +91!"}, nil)
	got := e.Respond(context.Background(), TurnInput{From: "+911234567890"})
	if got != "Hi +91!" {
		t.Fatalf("unexpected greeting %q", got)
	}
}

func TestRespondNilGreeter(t *testing.T) {
	e := newTestEngine(stubResolver{}, nil, nil)
	if got := e.Respond(context.Background(), TurnInput{}); got != cannedGreeting {
		t.Fatalf("expected canned greeting, got %q", got)
	}
}

func TestRespondRecoversFromPanic(t *testing.T) {
	e := newTestEngine(stubResolver{panic: true}, stubGreeter{}, nil)
	got := e.Respond(context.Background(), TurnInput{SpeechText: "crash me"})
	if got != apologyMessage {
		t.Fatalf("expected apology, got %q", got)
	}
	if !strings.Contains(got, "nextcoreai.in@gmail.com") {
		t.Fatalf("apology must include human contact")
	}
}

func TestRespondJournalsTurn(t *testing.T) {
	repo := audit.NewMemoryRepo()
	e := newTestEngine(stubResolver{}, stubGreeter{}, repo)

	e.Respond(context.Background(), TurnInput{CallID: "CA9", Digits: "1"})

	evs := repo.Events()
	if len(evs) != 1 {
		t.Fatalf("expected 1 journal event, got %d", len(evs))
	}
	if evs[0].Kind != audit.EventKindDigits || evs[0].CallID != "CA9" {
		t.Fatalf("unexpected event %+v", evs[0])
	}
}

func TestWelcome(t *testing.T) {
	e := newTestEngine(stubResolver{}, stubGreeter{}, nil)
	if e.Welcome() == "" {
		t.Fatalf("expected non-empty welcome")
	}
}
