package core

import "time"

// Pacer decides when the next generation is due. It compares monotonic
// readings against the time of the last advance instead of sleeping, so the
// caller keeps polling input at frame rate whatever the delay is.
type Pacer struct {
	last time.Time
}

// NewPacer returns a Pacer whose last tick is now.
func NewPacer(now time.Time) *Pacer {
	return &Pacer{last: now}
}

// Due reports whether at least delay has elapsed since the last tick. When it
// has, now becomes the last tick.
func (p *Pacer) Due(now time.Time, delay time.Duration) bool {
	if now.Sub(p.last) < delay {
		return false
	}
	p.last = now
	return true
}

// Reset makes now the last tick.
func (p *Pacer) Reset(now time.Time) { p.last = now }

// Last returns the time of the last tick.
func (p *Pacer) Last() time.Time { return p.last }
