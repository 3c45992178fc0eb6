package lcd

import (
	"fmt"
	"time"
)

// Lines drives the six display lines at once, in the order
// RS, E, D4, D5, D6, D7. A *gpiocdev.Lines satisfies it.
type Lines interface {
	SetValues(values []int) error
}

// HD44780 commands
const (
	cmdClear        = 0x01
	cmdEntryMode    = 0x06 // increment, no shift
	cmdDisplayOn    = 0x0C // display on, cursor off, blink off
	cmdFunction4Bit = 0x28 // 4-bit bus, 2 lines, 5x8 font
	cmdSetDDRAM     = 0x80
)

// rowOffsets are the DDRAM addresses of each row's first column.
var rowOffsets = [Rows]int{0x00, 0x40}

// HD44780 is a character display on a 4-bit parallel bus, write-only (RW
// tied to ground), bit-banged over GPIO lines.
type HD44780 struct {
	lines Lines
	width int
	buf   [6]int
	// sleep is replaced in tests.
	sleep func(time.Duration)
}

// NewHD44780 creates a driver; call Init before writing.
func NewHD44780(lines Lines, width int) *HD44780 {
	return &HD44780{lines: lines, width: width, sleep: time.Sleep}
}

// Init runs the power-on initialization by instruction sequence, which also
// recovers a controller that lost nibble sync.
func (d *HD44780) Init() error {
	d.sleep(50 * time.Millisecond)
	// Three 8-bit function sets resync the bus regardless of its state.
	for _, wait := range []time.Duration{4500 * time.Microsecond, 150 * time.Microsecond, 150 * time.Microsecond} {
		if err := d.nibble(0, 0x3); err != nil {
			return err
		}
		d.sleep(wait)
	}
	if err := d.nibble(0, 0x2); err != nil {
		return err
	}
	d.sleep(150 * time.Microsecond)

	for _, cmd := range []byte{cmdFunction4Bit, cmdDisplayOn, cmdClear, cmdEntryMode} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}
	return nil
}

// SetCursor moves the write position.
func (d *HD44780) SetCursor(row, col int) error {
	if row < 0 || row >= Rows {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if col < 0 {
		col = 0
	}
	return d.command(byte(cmdSetDDRAM | (rowOffsets[row] + col)))
}

// Write sends text at the cursor. Characters past the display width are
// dropped; non-ASCII bytes show as '?'.
func (d *HD44780) Write(text string) error {
	if len(text) > d.width {
		text = text[:d.width]
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 0x20 || c > 0x7E {
			c = '?'
		}
		if err := d.send(1, c); err != nil {
			return err
		}
	}
	return nil
}

func (d *HD44780) command(cmd byte) error {
	if err := d.send(0, cmd); err != nil {
		return fmt.Errorf("command %#02x: %w", cmd, err)
	}
	if cmd == cmdClear {
		d.sleep(2 * time.Millisecond)
	}
	return nil
}

// send writes one byte as two nibbles, high first.
func (d *HD44780) send(rs int, b byte) error {
	if err := d.nibble(rs, b>>4); err != nil {
		return err
	}
	if err := d.nibble(rs, b&0x0F); err != nil {
		return err
	}
	d.sleep(40 * time.Microsecond)
	return nil
}

// nibble presents four data bits and strobes E high then low; the display
// latches on the falling edge.
func (d *HD44780) nibble(rs int, n byte) error {
	d.buf[0] = rs
	for i := 0; i < 4; i++ {
		d.buf[2+i] = int(n>>i) & 1
	}
	for _, e := range []int{0, 1, 0} {
		d.buf[1] = e
		if err := d.lines.SetValues(d.buf[:]); err != nil {
			return fmt.Errorf("set lines: %w", err)
		}
	}
	return nil
}
