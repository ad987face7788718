package audit

import (
	"context"
	"sync"
)

// MemoryRepo keeps the most recent events in memory. Used when redis is not
// configured and in tests.
type MemoryRepo struct {
	mu     sync.Mutex
	cap    int
	events []Event
}

const defaultMemoryCap = 1000

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{cap: defaultMemoryCap} }

func (r *MemoryRepo) Append(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	if len(r.events) > r.cap {
		r.events = r.events[len(r.events)-r.cap:]
	}
	return nil
}

func (r *MemoryRepo) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Recent returns up to n most recent events, newest first.
func (r *MemoryRepo) Recent(_ context.Context, n int64) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > int64(len(r.events)) {
		n = int64(len(r.events))
	}
	out := make([]Event, 0, n)
	for i := len(r.events) - 1; i >= len(r.events)-int(n); i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}
