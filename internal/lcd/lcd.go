// Package lcd writes controller display frames to a two-line character
// display. The sink is an unreliable peripheral: errors are reported to the
// caller but never stop the control loop.
package lcd

import (
	"errors"
	"fmt"

	"github.com/sweeney/gate-counter/internal/logic"
)

// Rows is the number of display lines.
const Rows = 2

// ErrRowOutOfRange is returned by SetCursor for rows past the display.
var ErrRowOutOfRange = errors.New("lcd: row out of range")

// Sink is a character display.
type Sink interface {
	// Init fully re-initializes the display and clears it.
	Init() error
	SetCursor(row, col int) error
	Write(text string) error
}

// Apply writes a frame to the sink: initialization first if requested,
// then each line from column zero. It keeps going after a failure so one
// bad write does not leave the rest of the display stale.
func Apply(s Sink, f *logic.Frame) error {
	if f == nil {
		return nil
	}
	var errs []error
	if f.Reinit {
		if err := s.Init(); err != nil {
			errs = append(errs, fmt.Errorf("init: %w", err))
		}
	}
	for row, line := range f.Lines {
		if err := s.SetCursor(row, 0); err != nil {
			errs = append(errs, fmt.Errorf("cursor row %d: %w", row, err))
			continue
		}
		if err := s.Write(line); err != nil {
			errs = append(errs, fmt.Errorf("write row %d: %w", row, err))
		}
	}
	return errors.Join(errs...)
}

// Nop discards everything. Used when no display is attached.
type Nop struct{}

func (Nop) Init() error                  { return nil }
func (Nop) SetCursor(row, col int) error { return nil }
func (Nop) Write(text string) error      { return nil }
