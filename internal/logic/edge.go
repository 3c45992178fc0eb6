package logic

import "github.com/sweeney/gate-counter/internal/clock"

// signal tracks one digital input across ticks.
type signal struct {
	// Level sampled on the previous tick
	was bool
	// Time of the last accepted event (or rising edge, for long presses)
	last clock.Millis
}

// fallingEdge reports a trailing edge (asserted -> released) that is at
// least sep after the last accepted one. Edges inside the window are
// dropped, not deferred.
func (s *signal) fallingEdge(cur bool, now, sep clock.Millis) bool {
	if !s.was || cur {
		return false
	}
	if now-s.last < sep {
		return false
	}
	s.last = now
	return true
}

// repeat fires on every tick the input is held, at most once per delay.
func (s *signal) repeat(cur bool, now, delay clock.Millis) bool {
	if !cur || now-s.last < delay {
		return false
	}
	s.last = now
	return true
}

// rose reports a rising edge and restarts the hold timer on it.
func (s *signal) rose(cur bool, now clock.Millis) bool {
	if cur && !s.was {
		s.last = now
		return true
	}
	return false
}

// heldFor reports whether the input has been asserted on this and the
// previous tick for at least d since its rising edge.
func (s *signal) heldFor(cur bool, now, d clock.Millis) bool {
	return cur && s.was && now-s.last >= d
}

// commit stores the current level for the next tick's edge comparisons.
func (s *signal) commit(cur bool) {
	s.was = cur
}
