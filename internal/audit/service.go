package audit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for turn events. Append-only; no
// update or delete methods exist.
type Repository interface {
	Append(ctx context.Context, e Event) error
}

// RecentReader exposes the journal tail for operator inspection.
type RecentReader interface {
	Recent(ctx context.Context, n int64) ([]Event, error)
}

var ErrInvalidEvent = errors.New("audit: invalid event")

// Service records handled call turns. Best-effort: repository failures are
// logged and swallowed so a broken journal can never break a live call.
type Service struct {
	repo  Repository
	clock func() time.Time
	log   *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, clock: time.Now, log: log}
}

// Record journals one handled turn. Never returns an error to the caller.
func (s *Service) Record(ctx context.Context, e Event) {
	if err := s.append(ctx, e); err != nil {
		s.log.Warn("turn journal write failed", "call_id", e.CallID, "err", err)
	}
}

func (s *Service) append(ctx context.Context, e Event) error {
	if s.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.Kind == "" {
		return ErrInvalidEvent
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	return s.repo.Append(ctx, e)
}
