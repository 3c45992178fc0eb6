package logic

import "github.com/sweeney/gate-counter/internal/clock"

// Controller owns all state of the gate and advances it one tick at a time.
// It is not safe for concurrent use; the control loop is its only caller.
type Controller struct {
	sep, repeat, longHold clock.Millis

	counter *Counter
	alert   *Alert
	hold    holdRed
	editor  editor
	display display

	sensorIn  signal
	sensorOut signal

	lastNow       clock.Millis
	startTime     clock.Millis
	started       bool
	eventCounts   EventCounts
	lastHeartbeat clock.Millis
}

// NewController creates a controller with counts at the configured defaults.
func NewController(cfg Config) *Controller {
	return &Controller{
		sep:      clock.FromDuration(cfg.SensorSeparation),
		repeat:   clock.FromDuration(cfg.RepeatDelay),
		longHold: clock.FromDuration(cfg.LongHold),
		counter:  NewCounter(cfg.DefaultCurrent, cfg.DefaultMaximum),
		alert:    NewAlert(clock.FromDuration(cfg.Sound)),
		hold:     holdRed{duration: clock.FromDuration(cfg.HoldRed)},
		display: display{
			width:    cfg.DisplayWidth,
			reinit:   clock.FromDuration(cfg.DisplayReinit),
			needInit: true,
		},
	}
}

// Tick samples one set of inputs at time now and returns the outputs to
// drive. Stages run in a fixed order: clock, alert, sensors, indicator,
// buttons, display. Input levels are committed last so every stage compares
// against the previous tick.
func (c *Controller) Tick(now clock.Millis, in Inputs) Output {
	if !c.started {
		c.started = true
		c.startTime = now
		c.lastHeartbeat = now
	} else if now < c.lastNow {
		c.clearTimestamps()
	}
	c.lastNow = now

	var events []Event
	emit := func(t EventType) {
		events = append(events, Event{
			Time:    now,
			Type:    t,
			Current: c.counter.Current,
			Maximum: c.counter.Maximum,
		})
	}

	c.alert.Update(now)

	if c.sensorIn.fallingEdge(in.SensorIn, now, c.sep) {
		c.counter.Enter()
		c.hold.start(now)
		c.alert.Trigger(now)
		c.eventCounts.Entries++
		emit(EventEntry)
	}
	if c.sensorOut.fallingEdge(in.SensorOut, now, c.sep) {
		if c.counter.Leave() {
			c.alert.Trigger(now)
			emit(EventNoLongerFull)
		}
		c.eventCounts.Exits++
		emit(EventExit)
	}

	ind, allowAgain := c.hold.indicator(c.counter, now)
	if allowAgain {
		c.alert.Trigger(now)
		emit(EventAllowAgain)
	}

	if ev, ok := c.editor.apply(c.counter, in, now, c.longHold, c.repeat); ok {
		switch ev {
		case EventReset:
			c.alert.Trigger(now)
			c.eventCounts.Resets++
		case EventAdjust:
			c.eventCounts.Adjusts++
		}
		emit(ev)
	}

	frame := c.display.refresh(c.counter, now)

	c.sensorIn.commit(in.SensorIn)
	c.sensorOut.commit(in.SensorOut)
	c.editor.commit(in)

	return Output{
		Indicator: ind,
		Buzzer:    c.alert.Sounding(),
		Display:   frame,
		Events:    events,
	}
}

// clearTimestamps handles a clock wraparound: every stored timestamp is
// reset to zero so no elapsed-time computation spans the wrap.
func (c *Controller) clearTimestamps() {
	c.sensorIn.last = 0
	c.sensorOut.last = 0
	c.editor.clearTimestamps()
	c.alert.clearTimestamps()
	c.hold.since = 0
	c.display.lastInit = 0
	c.startTime = 0
	c.lastHeartbeat = 0
}

// Counts returns the current and maximum occupancy.
func (c *Controller) Counts() (current, maximum int) {
	return c.counter.Current, c.counter.Maximum
}

// EventCountsSnapshot returns a copy of the event counters.
func (c *Controller) EventCountsSnapshot() EventCounts {
	return c.eventCounts
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed since
// the last heartbeat (or startup). Returns nil before the first tick or if
// interval is zero (disabled).
func (c *Controller) CheckHeartbeat(now clock.Millis, interval clock.Millis) *HeartbeatData {
	if interval == 0 || !c.started {
		return nil
	}
	if now-c.lastHeartbeat < interval {
		return nil
	}
	c.lastHeartbeat = now
	return &HeartbeatData{
		Uptime:  now - c.startTime,
		Current: c.counter.Current,
		Maximum: c.counter.Maximum,
		Counts:  c.eventCounts,
	}
}
