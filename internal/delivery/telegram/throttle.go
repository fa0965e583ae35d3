package telegram

import (
	"sync"
	"time"
)

// throttle is a simple per-user command limiter: at most one command per
// window. Telegram delivers updates sequentially, but answers and commands
// arrive interleaved, so the map is still guarded.
type throttle struct {
	mu     sync.Mutex
	last   map[int64]time.Time
	window time.Duration
	now    func() time.Time
}

func newThrottle(window time.Duration) *throttle {
	return &throttle{
		last:   make(map[int64]time.Time),
		window: window,
		now:    time.Now,
	}
}

// allow reports whether the user may run a command now and, if so, records
// the attempt. A zero window disables throttling.
func (t *throttle) allow(userID int64) bool {
	if t.window <= 0 {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.last[userID]; ok && now.Sub(last) < t.window {
		return false
	}

	t.last[userID] = now
	return true
}
