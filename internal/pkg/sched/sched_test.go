package sched

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleFires(t *testing.T) {
	done := make(chan struct{})
	Schedule(context.Background(), 10*time.Millisecond, func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled continuation never fired")
	}
}

func TestScheduleCancel(t *testing.T) {
	var fired atomic.Bool
	cancel := Schedule(context.Background(), 20*time.Millisecond, func() {
		fired.Store(true)
	})
	cancel()

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestScheduleContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var fired atomic.Bool
	Schedule(ctx, 20*time.Millisecond, func() {
		fired.Store(true)
	})
	cancel()

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestSlotsLatestWins(t *testing.T) {
	slots := NewSlots()
	var first, second atomic.Bool

	slots.Schedule(context.Background(), "user@signifi.com", 30*time.Millisecond, func() {
		first.Store(true)
	})
	slots.Schedule(context.Background(), "user@signifi.com", 30*time.Millisecond, func() {
		second.Store(true)
	})

	time.Sleep(100 * time.Millisecond)
	assert.False(t, first.Load(), "earlier continuation should have been cancelled")
	assert.True(t, second.Load())
	assert.False(t, slots.Pending("user@signifi.com"))
}

func TestSlotsStaleContinuationKeepsReplacement(t *testing.T) {
	slots := NewSlots()
	started := make(chan struct{})
	release := make(chan struct{})
	var replaced atomic.Bool

	// First continuation fires and blocks mid-run.
	slots.Schedule(context.Background(), "k", time.Millisecond, func() {
		close(started)
		<-release
	})
	<-started

	// Replace the slot while the stale continuation is still running, then
	// let the stale one finish. Its cleanup must not unregister the
	// replacement.
	slots.Schedule(context.Background(), "k", 50*time.Millisecond, func() {
		replaced.Store(true)
	})
	close(release)

	time.Sleep(20 * time.Millisecond)
	assert.True(t, slots.Pending("k"), "replacement continuation should still be registered")

	time.Sleep(100 * time.Millisecond)
	assert.True(t, replaced.Load())
	assert.False(t, slots.Pending("k"))
}

func TestSlotsIndependentKeys(t *testing.T) {
	slots := NewSlots()
	var a, b atomic.Bool

	slots.Schedule(context.Background(), "a", 10*time.Millisecond, func() { a.Store(true) })
	slots.Schedule(context.Background(), "b", 10*time.Millisecond, func() { b.Store(true) })

	time.Sleep(80 * time.Millisecond)
	assert.True(t, a.Load())
	assert.True(t, b.Load())
}

func TestSlotsCancel(t *testing.T) {
	slots := NewSlots()
	var fired atomic.Bool

	slots.Schedule(context.Background(), "k", 20*time.Millisecond, func() { fired.Store(true) })
	assert.True(t, slots.Pending("k"))

	slots.Cancel("k")
	assert.False(t, slots.Pending("k"))

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
}
