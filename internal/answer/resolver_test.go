package answer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubBackend struct {
	text string
	err  error
}

func (s stubBackend) Answer(context.Context, string) (string, error) {
	return s.text, s.err
}

func TestResolveReturnsBackendAnswer(t *testing.T) {
	r := NewResolver(stubBackend{text: "backend answer"}, nil)
	if got := r.Resolve(context.Background(), "What services do you offer?"); got != "backend answer" {
		t.Fatalf("expected backend answer, got %q", got)
	}
}

func TestResolveFallsBackOnFailure(t *testing.T) {
	kinds := []FailureKind{FailureQuota, FailureTimeout, FailureUnavailable, FailureNotConfigured}
	for _, kind := range kinds {
		r := NewResolver(stubBackend{err: newFailure(kind, errors.New("boom"))}, nil)
		got := r.Resolve(context.Background(), "What services do you offer?")
		if got == "" {
			t.Fatalf("kind %s: expected non-empty fallback answer", kind)
		}
		if !strings.Contains(got, "digital transformation") {
			t.Fatalf("kind %s: expected services fallback, got %q", kind, got)
		}
	}
}

func TestResolveFallsBackOnPlainError(t *testing.T) {
	r := NewResolver(stubBackend{err: errors.New("socket closed")}, nil)
	if got := r.Resolve(context.Background(), "what is the price"); got == "" {
		t.Fatalf("expected non-empty answer")
	}
}

func TestResolveNilBackend(t *testing.T) {
	r := NewResolver(nil, nil)
	if got := r.Resolve(context.Background(), "anything at all"); got == "" {
		t.Fatalf("expected non-empty answer")
	}
}

func TestResolveAlwaysNonEmpty(t *testing.T) {
	r := NewResolver(stubBackend{err: errors.New("always down")}, nil)
	for _, q := range []string{"", "price", "who are you", strings.Repeat("x", 5000)} {
		if r.Resolve(context.Background(), q) == "" {
			t.Fatalf("expected non-empty answer for %q", q)
		}
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(newFailure(FailureQuota, nil)); got != FailureQuota {
		t.Fatalf("expected quota, got %s", got)
	}
	if got := KindOf(context.DeadlineExceeded); got != FailureTimeout {
		t.Fatalf("expected timeout, got %s", got)
	}
	if got := KindOf(errors.New("misc")); got != FailureUnavailable {
		t.Fatalf("expected unavailable, got %s", got)
	}
}
