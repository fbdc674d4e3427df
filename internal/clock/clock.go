// Package clock provides the monotonic time source used for event timestamps.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock with monotonic readings.
type System struct{}

// Now returns the current time with monotonic clock reading
func (System) Now() time.Time { return time.Now() }

// Mock is a controllable Clock for tests
type Mock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMock creates a mock clock starting at the given time
func NewMock(start time.Time) *Mock {
	return &Mock{currentTime: start}
}

func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mock forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
