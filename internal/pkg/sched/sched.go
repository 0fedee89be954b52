// Package sched provides cancellable delayed continuations. The platform
// paces its post-auth redirects with a short delay; modelling the delay as an
// explicit scheduled continuation gives a later action on the same slot
// defined precedence over the earlier one instead of letting the two race.
package sched

import (
	"context"
	"sync"
	"time"
)

// Schedule runs fn after delay unless the returned cancel function is called
// or ctx is done first. cancel is safe to call multiple times.
func Schedule(ctx context.Context, delay time.Duration, fn func()) (cancel func()) {
	ctx, cancelCtx := context.WithCancel(ctx)
	timer := time.NewTimer(delay)

	go func() {
		defer timer.Stop()
		select {
		case <-timer.C:
			fn()
		case <-ctx.Done():
		}
	}()

	return cancelCtx
}

// Slots schedules at most one pending continuation per key. Scheduling on a
// key cancels that key's earlier pending continuation, so the latest action
// wins.
type Slots struct {
	mu      sync.Mutex
	gen     uint64
	pending map[string]slot
}

type slot struct {
	cancel func()
	gen    uint64
}

// NewSlots creates an empty slot table.
func NewSlots() *Slots {
	return &Slots{
		pending: make(map[string]slot),
	}
}

// Schedule runs fn after delay under the given key, cancelling any earlier
// continuation still pending on that key.
func (s *Slots) Schedule(ctx context.Context, key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.pending[key]; ok {
		cur.cancel()
	}

	s.gen++
	gen := s.gen
	var once sync.Once
	wrapped := func() {
		once.Do(func() {
			fn()
			s.clear(key, gen)
		})
	}
	s.pending[key] = slot{cancel: Schedule(ctx, delay, wrapped), gen: gen}
}

// Cancel drops the pending continuation for key, if any.
func (s *Slots) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.pending[key]; ok {
		cur.cancel()
		delete(s.pending, key)
	}
}

// Pending reports whether key has a continuation scheduled.
func (s *Slots) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// clear removes key only while it still holds the continuation that fired.
// A continuation that lost the slot to a later Schedule must not unregister
// its replacement.
func (s *Slots) clear(key string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.pending[key]; ok && cur.gen == gen {
		delete(s.pending, key)
	}
}
