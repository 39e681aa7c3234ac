package driver

import "time"

// throttle limits progress updates to one per interval
type throttle struct {
	now      func() time.Time
	interval time.Duration
	last     time.Time
}

func newThrottle(now func() time.Time, interval time.Duration) *throttle {
	return &throttle{now: now, interval: interval, last: now()}
}

// ready reports whether more than interval has passed since the last
// accepted update and, if so, starts a new interval
func (t *throttle) ready() bool {
	now := t.now()
	if now.Sub(t.last) <= t.interval {
		return false
	}
	t.last = now
	return true
}
