//go:build linux

package gpio

import (
	"errors"
	"fmt"

	"github.com/sweeney/gate-counter/internal/logic"
	"github.com/warthog618/go-gpiocdev"
)

const consumer = "gate-counter"

// RealIO drives the gate from actual hardware using the Linux GPIO
// character device. It implements both Reader and Writer.
type RealIO struct {
	chip    *gpiocdev.Chip
	inputs  *gpiocdev.Lines
	outputs *gpiocdev.Lines
	extra   []*gpiocdev.Lines
	values  []int
}

// Open requests the five inputs and three outputs on the named chip.
// Inputs get pull-ups; with activeLow a grounded pin reads as asserted,
// which suits buttons to ground and open-collector beam sensors.
func Open(chipName string, pins Pins, activeLow bool) (*RealIO, error) {
	chip, err := gpiocdev.NewChip(chipName, gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	inOpts := []gpiocdev.LineReqOption{gpiocdev.AsInput, gpiocdev.WithPullUp}
	if activeLow {
		inOpts = append(inOpts, gpiocdev.AsActiveLow)
	}
	inputs, err := chip.RequestLines(pins.inputs(), inOpts...)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request input pins %v: %w", pins.inputs(), err)
	}

	// Start with everything off.
	outputs, err := chip.RequestLines(pins.outputs(), gpiocdev.AsOutput(0, 0, 0))
	if err != nil {
		inputs.Close()
		chip.Close()
		return nil, fmt.Errorf("request output pins %v: %w", pins.outputs(), err)
	}

	return &RealIO{
		chip:    chip,
		inputs:  inputs,
		outputs: outputs,
		values:  make([]int, len(pins.inputs())),
	}, nil
}

// Read returns the logical levels of the five inputs.
func (r *RealIO) Read() (logic.Inputs, error) {
	if err := r.inputs.Values(r.values); err != nil {
		return logic.Inputs{}, fmt.Errorf("read inputs: %w", err)
	}
	return inputsFromValues(r.values), nil
}

// Write sets the light and buzzer lines.
func (r *RealIO) Write(o Outputs) error {
	if err := r.outputs.SetValues(o.values()); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}
	return nil
}

// RequestOutputs requests additional output lines on the same chip, all
// initially low. They are released by Close.
func (r *RealIO) RequestOutputs(offsets []int) (LineSetter, error) {
	lines, err := r.chip.RequestLines(offsets, gpiocdev.AsOutput(make([]int, len(offsets))...))
	if err != nil {
		return nil, fmt.Errorf("request output pins %v: %w", offsets, err)
	}
	r.extra = append(r.extra, lines)
	return lines, nil
}

// Close releases GPIO resources.
// Outputs are driven low, then every line is reconfigured to input with
// pull-down (matching Pi boot defaults) before closing so that nothing is
// left driven across a reboot.
func (r *RealIO) Close() error {
	var errs []error

	if r.outputs != nil {
		if err := r.outputs.SetValues(Outputs{}.values()); err != nil {
			errs = append(errs, fmt.Errorf("clear outputs: %w", err))
		}
	}
	for _, l := range append([]*gpiocdev.Lines{r.inputs, r.outputs}, r.extra...) {
		if l == nil {
			continue
		}
		if err := l.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure pins %v: %w", l.Offsets(), err))
		}
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pins %v: %w", l.Offsets(), err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	return errors.Join(errs...)
}
