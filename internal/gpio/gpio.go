// Package gpio provides GPIO input reading and output driving with hardware
// abstraction. The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

import (
	"errors"

	"github.com/sweeney/gate-counter/internal/logic"
)

// ErrUnsupported is returned by every hardware operation off Linux.
var ErrUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// Reader reads the five gate inputs.
type Reader interface {
	// Read returns the logical levels of all inputs (true = asserted).
	// Electrical polarity is handled by the implementation.
	Read() (logic.Inputs, error)

	// Close releases GPIO resources.
	Close() error
}

// Outputs are the levels of the indicator lights and the buzzer.
type Outputs struct {
	Red    bool
	Green  bool
	Buzzer bool
}

// OutputsFrom extracts the pin levels from a controller tick.
func OutputsFrom(out logic.Output) Outputs {
	return Outputs{Red: out.Red(), Green: out.Green(), Buzzer: out.Buzzer}
}

// Writer drives the three outputs.
type Writer interface {
	Write(Outputs) error
	Close() error
}

// LineSetter drives a group of output lines at once.
type LineSetter interface {
	SetValues(values []int) error
}

// Pins maps every signal to a line offset on the chip (BCM numbering on a
// Raspberry Pi).
type Pins struct {
	SensorIn  int
	SensorOut int
	Reset     int
	Up        int
	Down      int
	Red       int
	Green     int
	Buzzer    int
}

// Default pin assignments (BCM numbering)
const (
	DefaultPinSensorIn  = 17
	DefaultPinSensorOut = 27
	DefaultPinReset     = 22
	DefaultPinUp        = 23
	DefaultPinDown      = 24
	DefaultPinRed       = 5
	DefaultPinGreen     = 6
	DefaultPinBuzzer    = 13
)

func (p Pins) inputs() []int {
	return []int{p.SensorIn, p.SensorOut, p.Reset, p.Up, p.Down}
}

func (p Pins) outputs() []int {
	return []int{p.Red, p.Green, p.Buzzer}
}

// inputsFromValues maps line values, in inputs() order, to logical inputs.
func inputsFromValues(v []int) logic.Inputs {
	return logic.Inputs{
		SensorIn:  v[0] != 0,
		SensorOut: v[1] != 0,
		Reset:     v[2] != 0,
		Up:        v[3] != 0,
		Down:      v[4] != 0,
	}
}

// values maps outputs to line values in outputs() order.
func (o Outputs) values() []int {
	return []int{b2i(o.Red), b2i(o.Green), b2i(o.Buzzer)}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
