package game

import (
	"sync"
	"time"
)

// Clock is the single time source of a session. Everything scheduled is a
// function of Now() minus the session start.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
