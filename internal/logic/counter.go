package logic

// Target selects which count an adjustment applies to.
type Target int

const (
	TargetCurrent Target = iota
	TargetMaximum
)

func (t Target) String() string {
	if t == TargetCurrent {
		return "current"
	}
	return "maximum"
}

// Counter holds the occupancy counts.
//
// Increments never clamp: entries beyond the maximum are still counted
// because the gate can be forced. Decrements stop at zero.
type Counter struct {
	Current int
	Maximum int

	defCurrent int
	defMaximum int
	dirty      bool
}

// NewCounter creates a counter at the given defaults, marked dirty so the
// first render shows it.
func NewCounter(defCurrent, defMaximum int) *Counter {
	return &Counter{
		Current:    defCurrent,
		Maximum:    defMaximum,
		defCurrent: defCurrent,
		defMaximum: defMaximum,
		dirty:      true,
	}
}

// Enter counts one person in.
func (c *Counter) Enter() {
	c.Current++
	c.dirty = true
}

// Leave counts one person out. It reports whether the facility was full at
// the moment of leaving; at zero nothing changes and it reports false.
func (c *Counter) Leave() (wasFull bool) {
	c.dirty = true
	if c.Current <= 0 {
		return false
	}
	wasFull = c.Current == c.Maximum
	c.Current--
	return wasFull
}

// Adjust applies delta to the selected count. Positive deltas are applied
// as is; negative ones floor at zero.
func (c *Counter) Adjust(target Target, delta int) {
	v := &c.Maximum
	if target == TargetCurrent {
		v = &c.Current
	}
	*v += delta
	if delta < 0 && *v < 0 {
		*v = 0
	}
	c.dirty = true
}

// Reset restores the default counts.
func (c *Counter) Reset() {
	c.Current = c.defCurrent
	c.Maximum = c.defMaximum
	c.dirty = true
}

// Allow reports whether there is room for another entry.
func (c *Counter) Allow() bool {
	return c.Current < c.Maximum
}

// takeDirty returns and clears the dirty flag.
func (c *Counter) takeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}
