// Package clock provides the millisecond time base of the control loop.
// Readings are 32-bit and wrap around after ~49.7 days, like a
// microcontroller tick counter.
package clock

import (
	"math"
	"time"
)

// Millis is milliseconds since start, modulo 2^32.
type Millis uint32

// MaxDuration is the longest interval a Millis difference can represent.
const MaxDuration = time.Duration(math.MaxUint32) * time.Millisecond

// Source yields the current reading.
type Source interface {
	Now() Millis
}

// FromDuration converts d to a Millis interval, truncating sub-millisecond
// precision.
func FromDuration(d time.Duration) Millis {
	return Millis(d.Milliseconds())
}

// Duration converts a Millis interval back to a time.Duration.
func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// System reads the monotonic clock relative to the moment it was created.
type System struct {
	start time.Time
}

// NewSystem starts a system clock at zero.
func NewSystem() *System {
	return &System{start: time.Now()}
}

// Now returns the elapsed milliseconds, wrapped to 32 bits.
func (s *System) Now() Millis {
	return Millis(uint64(time.Since(s.start).Milliseconds()))
}

// Fake is a manually driven clock for tests.
type Fake struct {
	ms Millis
}

// NewFake creates a fake clock at the given reading.
func NewFake(start Millis) *Fake {
	return &Fake{ms: start}
}

// Now returns the current fake reading.
func (f *Fake) Now() Millis { return f.ms }

// Set jumps to an absolute reading.
func (f *Fake) Set(ms Millis) { f.ms = ms }

// Advance moves the clock forward by d, wrapping like the real counter.
func (f *Fake) Advance(d time.Duration) Millis {
	f.ms += FromDuration(d)
	return f.ms
}
