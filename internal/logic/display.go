package logic

import (
	"fmt"

	"github.com/sweeney/gate-counter/internal/clock"
)

const (
	labelCurrent = "Current : "
	labelMaximum = "Maximum : "
)

// display throttles re-renders of the two-line text display.
type display struct {
	width  int
	reinit clock.Millis
	// needInit forces a reinitialization on the first tick.
	needInit bool
	lastInit clock.Millis
}

// refresh returns the frame to write this tick, or nil. A periodic full
// reinitialization recovers the display from glitches on its link.
func (d *display) refresh(c *Counter, now clock.Millis) *Frame {
	doInit := d.needInit || now-d.lastInit >= d.reinit
	if doInit {
		d.needInit = false
		d.lastInit = now
	}
	dirty := c.takeDirty()
	if !doInit && !dirty {
		return nil
	}
	return &Frame{
		Reinit: doInit,
		Lines: [2]string{
			d.pad(fmt.Sprintf("%s%d", labelCurrent, c.Current)),
			d.pad(fmt.Sprintf("%s%d", labelMaximum, c.Maximum)),
		},
	}
}

// pad fills s with spaces to the display width so that a shorter number
// overwrites the digits of a longer one. Longer text is left whole; the
// sink clips it at the hardware edge.
func (d *display) pad(s string) string {
	return fmt.Sprintf("%-*s", d.width, s)
}
