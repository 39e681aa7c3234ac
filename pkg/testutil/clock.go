package testutil

import "time"

// FakeClock advances by Step every time Now is called
type FakeClock struct {
	Current time.Time
	Step    time.Duration
}

// NewFakeClock starts at a fixed instant
func NewFakeClock(step time.Duration) *FakeClock {
	return &FakeClock{Current: time.Unix(1_000_000, 0), Step: step}
}

// Now returns the current time, then advances it
func (c *FakeClock) Now() time.Time {
	t := c.Current
	c.Current = c.Current.Add(c.Step)
	return t
}
