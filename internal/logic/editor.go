package logic

import "github.com/sweeney/gate-counter/internal/clock"

// editor resolves the reset/up/down button chords.
type editor struct {
	reset signal
	up    signal
	down  signal
	// lockout suppresses the long-press reset until the reset button is
	// released. It is also set when up/down are combined with reset.
	lockout bool
}

// apply runs one tick of chord resolution against c and returns the event
// it caused, if any. Precedence is fixed: release, rising edge, long
// press, up, down.
func (e *editor) apply(c *Counter, in Inputs, now, longHold, repeat clock.Millis) (EventType, bool) {
	if !in.Reset {
		e.lockout = false
	}
	e.reset.rose(in.Reset, now)

	if !e.lockout && e.reset.heldFor(in.Reset, now, longHold) {
		c.Reset()
		e.lockout = true
		return EventReset, true
	}

	target := TargetMaximum
	if in.Reset {
		target = TargetCurrent
	}

	if e.up.repeat(in.Up, now, repeat) {
		c.Adjust(target, 1)
		e.lockout = in.Reset
		return EventAdjust, true
	}
	if e.down.repeat(in.Down, now, repeat) {
		c.Adjust(target, -1)
		e.lockout = in.Reset
		return EventAdjust, true
	}
	return "", false
}

func (e *editor) commit(in Inputs) {
	e.reset.commit(in.Reset)
	e.up.commit(in.Up)
	e.down.commit(in.Down)
}

func (e *editor) clearTimestamps() {
	e.reset.last = 0
	e.up.last = 0
	e.down.last = 0
}
