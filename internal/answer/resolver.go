package answer

import (
	"context"
	"log/slog"

	"voice-agent/internal/fallback"
)

// Resolver composes the answer backend with the keyword fallback so callers
// never see a backend failure.
//
// One attempt only: a degraded backend is assumed to stay degraded for the
// remainder of the call, and the webhook deadline leaves no room for retries.
type Resolver struct {
	backend Backend
	log     *slog.Logger
}

func NewResolver(backend Backend, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{backend: backend, log: log}
}

// Resolve returns an answer for the question. Always non-empty; backend
// failures are logged and replaced with the canned topic answer.
func (r *Resolver) Resolve(ctx context.Context, question string) string {
	if r.backend != nil {
		text, err := r.backend.Answer(ctx, question)
		if err == nil {
			return text
		}
		r.log.Warn("answer backend failed, using fallback",
			"kind", string(KindOf(err)), "err", err)
	}
	return fallback.Respond(question)
}
