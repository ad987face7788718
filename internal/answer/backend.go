package answer

import (
	"context"
	"errors"
	"fmt"
)

// Backend produces a natural-language answer for a caller question. A single
// implementation backed by the language model exists in production; tests use
// stubs.
//
// Failures are returned as *Failure so callers can match on the kind instead
// of string-sniffing error text.
type Backend interface {
	Answer(ctx context.Context, question string) (string, error)
}

// FailureKind classifies why the answer backend could not produce an answer.
type FailureKind string

const (
	FailureQuota         FailureKind = "quota_exceeded"
	FailureTimeout       FailureKind = "timeout"
	FailureUnavailable   FailureKind = "unavailable"
	FailureNotConfigured FailureKind = "not_configured"
)

// Failure is the degradation signal raised by the answer backend.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("answer: backend failure (%s)", f.Kind)
	}
	return fmt.Sprintf("answer: backend failure (%s): %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

func newFailure(kind FailureKind, err error) *Failure {
	return &Failure{Kind: kind, Err: err}
}

// KindOf extracts the failure kind from an error, defaulting to unavailable
// for errors that did not originate as a Failure.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	return FailureUnavailable
}
