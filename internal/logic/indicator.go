package logic

import "github.com/sweeney/gate-counter/internal/clock"

// holdRed is the forced-deny window that follows every accepted entry.
type holdRed struct {
	duration clock.Millis
	active   bool
	since    clock.Millis
}

func (h *holdRed) start(now clock.Millis) {
	h.active = true
	h.since = now
}

// indicator derives the light state for this tick. When the hold window
// expires with room left, it reports allowAgain so the caller can announce
// it.
func (h *holdRed) indicator(c *Counter, now clock.Millis) (ind Indicator, allowAgain bool) {
	allow := c.Allow()
	if h.active {
		if now-h.since >= h.duration {
			h.active = false
			allowAgain = allow
		} else {
			allow = false
		}
	}
	if allow {
		return IndicatorAllow, allowAgain
	}
	return IndicatorDeny, allowAgain
}
