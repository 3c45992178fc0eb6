package logic

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sweeney/gate-counter/internal/clock"
)

// Config holds every tunable of the controller. It is read once at start
// and never changes during a run.
type Config struct {
	// SensorSeparation is the minimum time between two accepted edges of
	// the same presence sensor.
	SensorSeparation time.Duration
	// RepeatDelay is the auto-repeat period of a held up/down button.
	RepeatDelay time.Duration
	// LongHold is how long reset must be held to restore the defaults.
	LongHold time.Duration
	// HoldRed is the forced-deny window after every accepted entry.
	HoldRed time.Duration
	// Sound is how long the buzzer sounds once triggered.
	Sound time.Duration
	// DisplayReinit is the period of forced display re-initialization.
	DisplayReinit time.Duration

	DefaultCurrent int
	DefaultMaximum int

	// DisplayWidth is the number of characters per display line.
	DisplayWidth int
}

// DefaultConfig returns the stock timings of the controller.
func DefaultConfig() Config {
	return Config{
		SensorSeparation: 1000 * time.Millisecond,
		RepeatDelay:      500 * time.Millisecond,
		LongHold:         5000 * time.Millisecond,
		HoldRed:          2000 * time.Millisecond,
		Sound:            500 * time.Millisecond,
		DisplayReinit:    60 * time.Second,
		DefaultCurrent:   0,
		DefaultMaximum:   20,
		DisplayWidth:     16,
	}
}

// Validate checks that the config can drive a controller.
func (c Config) Validate() error {
	var errs []error
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"sensor separation", c.SensorSeparation},
		{"repeat delay", c.RepeatDelay},
		{"long hold", c.LongHold},
		{"hold red", c.HoldRed},
		{"sound", c.Sound},
		{"display reinit", c.DisplayReinit},
	}
	for _, d := range durations {
		if d.d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", d.name, d.d))
		}
		if d.d > clock.MaxDuration {
			errs = append(errs, fmt.Errorf("%s exceeds clock range, got %v", d.name, d.d))
		}
	}
	if c.DefaultCurrent < 0 {
		errs = append(errs, fmt.Errorf("default current must not be negative, got %d", c.DefaultCurrent))
	}
	if c.DefaultMaximum < 0 {
		errs = append(errs, fmt.Errorf("default maximum must not be negative, got %d", c.DefaultMaximum))
	}
	if need := c.minDisplayWidth(); c.DisplayWidth < need {
		errs = append(errs, fmt.Errorf("display width %d too narrow, need %d", c.DisplayWidth, need))
	}
	return errors.Join(errs...)
}

// minDisplayWidth is the width needed to show both default counts in full.
func (c Config) minDisplayWidth() int {
	digits := len(strconv.Itoa(max(c.DefaultCurrent, c.DefaultMaximum, 0)))
	return max(len(labelCurrent), len(labelMaximum)) + digits
}
