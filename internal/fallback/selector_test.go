package fallback

import (
	"strings"
	"testing"
)

func TestClassifyPriorityOrder(t *testing.T) {
	// Matches both the services and technologies keyword sets; the earlier
	// rule must win.
	if got := Classify("What services and technology stack do you offer?"); got != TopicServices {
		t.Fatalf("expected services, got %q", got)
	}
}

func TestClassifyTopics(t *testing.T) {
	cases := []struct {
		question string
		want     Topic
	}{
		{"Which framework is in your stack?", TopicTechnologies},
		{"How can I reach you by email?", TopicContact},
		{"How much is the fee?", TopicPricing},
		{"Tell me more regarding the company", TopicAbout},
		{"xyzzy", TopicDefault},
	}
	for _, tc := range cases {
		if got := Classify(tc.question); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.question, got, tc.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("PRICE?"); got != TopicPricing {
		t.Fatalf("expected pricing, got %q", got)
	}
}

func TestRespondDeterministic(t *testing.T) {
	q := "What services do you offer?"
	first := Respond(q)
	second := Respond(q)
	if first == "" {
		t.Fatalf("expected non-empty response")
	}
	if first != second {
		t.Fatalf("expected identical responses for identical questions")
	}
	if first != responses[TopicServices] {
		t.Fatalf("expected services template")
	}
}

func TestRespondDefaultEchoesQuestion(t *testing.T) {
	q := "qwerty uiop"
	got := Respond(q)
	if !strings.Contains(got, q) {
		t.Fatalf("expected default response to echo question, got: %s", got)
	}
	if !strings.Contains(got, "nextcoreai.in@gmail.com") {
		t.Fatalf("expected contact details in default response")
	}
}

func TestRespondTotal(t *testing.T) {
	for _, q := range []string{"", " ", "\x00", strings.Repeat("a", 10000)} {
		if Respond(q) == "" {
			t.Fatalf("expected non-empty response for %q", q)
		}
	}
}
