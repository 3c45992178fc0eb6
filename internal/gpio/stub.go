//go:build !linux

package gpio

import "github.com/sweeney/gate-counter/internal/logic"

// RealIO is not available on non-Linux platforms.
type RealIO struct{}

// Open returns an error on non-Linux platforms.
func Open(chipName string, pins Pins, activeLow bool) (*RealIO, error) {
	return nil, ErrUnsupported
}

// Read is not implemented on non-Linux platforms.
func (r *RealIO) Read() (logic.Inputs, error) {
	return logic.Inputs{}, ErrUnsupported
}

// Write is not implemented on non-Linux platforms.
func (r *RealIO) Write(Outputs) error {
	return ErrUnsupported
}

// RequestOutputs is not implemented on non-Linux platforms.
func (r *RealIO) RequestOutputs(offsets []int) (LineSetter, error) {
	return nil, ErrUnsupported
}

// Close is not implemented on non-Linux platforms.
func (r *RealIO) Close() error {
	return nil
}
