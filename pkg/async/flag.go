package async

import (
	"sync"
	"time"
)

// ExpiringFlag is a boolean that resets to false after a fixed duration.
// Repeated Set calls reschedule the reset, keeping the flag raised while
// triggers keep arriving. Backs transient indicators such as the library's
// persistence-degraded state.
type ExpiringFlag struct {
	mu    sync.Mutex
	ttl   time.Duration
	set   bool
	timer *time.Timer
}

// NewExpiringFlag creates a flag that stays raised for ttl after each Set.
func NewExpiringFlag(ttl time.Duration) *ExpiringFlag {
	return &ExpiringFlag{ttl: ttl}
}

// Set raises the flag and schedules its reset.
func (f *ExpiringFlag) Set() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set = true
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.ttl, func() {
		f.mu.Lock()
		f.set = false
		f.mu.Unlock()
	})
}

// IsSet reports whether the flag is currently raised.
func (f *ExpiringFlag) IsSet() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}

// Clear lowers the flag immediately and cancels any pending reset.
func (f *ExpiringFlag) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set = false
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
