package gpio

import "fmt"

type namedPin struct {
	name   string
	offset int
}

// Validate rejects negative offsets and pins used for more than one signal.
// Extra pins (the display lines) take part in the duplicate check.
func (p Pins) Validate(extra ...int) error {
	pins := []namedPin{
		{"sensor-in", p.SensorIn},
		{"sensor-out", p.SensorOut},
		{"reset", p.Reset},
		{"up", p.Up},
		{"down", p.Down},
		{"red", p.Red},
		{"green", p.Green},
		{"buzzer", p.Buzzer},
	}
	for i, off := range extra {
		pins = append(pins, namedPin{fmt.Sprintf("display[%d]", i), off})
	}

	seen := make(map[int]string)
	for _, n := range pins {
		if n.offset < 0 {
			return fmt.Errorf("pin %s: negative offset %d", n.name, n.offset)
		}
		if other, ok := seen[n.offset]; ok {
			return fmt.Errorf("pin %d used by both %s and %s", n.offset, other, n.name)
		}
		seen[n.offset] = n.name
	}
	return nil
}
