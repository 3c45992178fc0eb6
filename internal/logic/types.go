// Package logic contains the pure control logic of the gate counter.
// This package has NO external dependencies (no GPIO, display, OS, or time.Sleep).
// Time is always injected as a clock.Millis reading on every tick.
package logic

import "github.com/sweeney/gate-counter/internal/clock"

// Indicator is the state of the red/green entry light.
type Indicator string

const (
	IndicatorAllow Indicator = "ALLOW"
	IndicatorDeny  Indicator = "DENY"
)

// EventType identifies something the controller accepted during a tick.
type EventType string

const (
	EventEntry        EventType = "ENTRY"
	EventExit         EventType = "EXIT"
	EventReset        EventType = "RESET"
	EventAdjust       EventType = "ADJUST"
	EventAllowAgain   EventType = "ALLOW_AGAIN"
	EventNoLongerFull EventType = "NO_LONGER_FULL"
)

// Event is emitted by Tick for logging by the orchestrating loop.
type Event struct {
	Time    clock.Millis
	Type    EventType
	Current int
	Maximum int
}

// Inputs is one sample of all five digital inputs, already in logical form
// (true = asserted, regardless of the electrical polarity).
type Inputs struct {
	SensorIn  bool
	SensorOut bool
	Reset     bool
	Up        bool
	Down      bool
}

// Frame is a pending display update. Reinit asks the sink to be fully
// re-initialized before the lines are written.
type Frame struct {
	Reinit bool
	Lines  [2]string
}

// Output is everything a tick asks the outside world to do.
type Output struct {
	Indicator Indicator
	Buzzer    bool
	// Display is nil when nothing needs to be written this tick.
	Display *Frame
	Events  []Event
}

// Red reports the level of the red (deny) light.
func (o Output) Red() bool { return o.Indicator == IndicatorDeny }

// Green reports the level of the green (allow) light.
func (o Output) Green() bool { return o.Indicator == IndicatorAllow }

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	Entries int
	Exits   int
	Resets  int
	Adjusts int
}

// HeartbeatData contains information for a heartbeat log line.
type HeartbeatData struct {
	Uptime  clock.Millis
	Current int
	Maximum int
	Counts  EventCounts
}
