package logic

import "github.com/sweeney/gate-counter/internal/clock"

// Alert is the buzzer state machine: idle or sounding for a fixed time.
type Alert struct {
	duration clock.Millis
	sounding bool
	started  clock.Millis
}

// NewAlert creates an idle alert that sounds for d once triggered.
func NewAlert(d clock.Millis) *Alert {
	return &Alert{duration: d}
}

// Trigger starts sounding. While already sounding it does nothing: the
// duration is neither extended nor stacked.
func (a *Alert) Trigger(now clock.Millis) {
	if a.sounding {
		return
	}
	a.sounding = true
	a.started = now
}

// Update silences the alert once its duration has elapsed.
func (a *Alert) Update(now clock.Millis) {
	if a.sounding && now-a.started >= a.duration {
		a.sounding = false
	}
}

// Sounding is the buzzer output level.
func (a *Alert) Sounding() bool {
	return a.sounding
}

func (a *Alert) clearTimestamps() {
	a.started = 0
}
