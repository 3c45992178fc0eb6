package lcd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweeney/gate-counter/internal/logic"
)

func TestApply(t *testing.T) {
	f := &Fake{}
	require.NoError(t, Apply(f, nil))
	require.Empty(t, f.Calls)

	err := Apply(f, &logic.Frame{Reinit: true, Lines: [2]string{"Current : 3", "Maximum : 20"}})
	require.NoError(t, err)
	require.Equal(t, []string{
		"init",
		"cursor 0,0",
		"write Current : 3",
		"cursor 1,0",
		"write Maximum : 20",
	}, f.Calls)

	f.Calls = nil
	require.NoError(t, Apply(f, &logic.Frame{Lines: [2]string{"a", "b"}}))
	require.Equal(t, 1, f.Inits, "no init without Reinit")
}

func TestApplyKeepsGoingOnError(t *testing.T) {
	f := &Fake{Err: errors.New("i2c nak")}
	err := Apply(f, &logic.Frame{Reinit: true, Lines: [2]string{"a", "b"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init")
	assert.Contains(t, err.Error(), "cursor row 1")
	require.Equal(t, []string{"init", "cursor 0,0", "cursor 1,0"}, f.Calls)
}

// recLines records each SetValues call.
type recLines struct {
	sets [][]int
	err  error
}

func (r *recLines) SetValues(v []int) error {
	if r.err != nil {
		return r.err
	}
	r.sets = append(r.sets, append([]int(nil), v...))
	return nil
}

func newTestDisplay(width int) (*HD44780, *recLines, *[]time.Duration) {
	lines := &recLines{}
	d := NewHD44780(lines, width)
	var sleeps []time.Duration
	d.sleep = func(dur time.Duration) { sleeps = append(sleeps, dur) }
	return d, lines, &sleeps
}

func TestHD44780SetCursor(t *testing.T) {
	d, lines, _ := newTestDisplay(16)

	require.NoError(t, d.SetCursor(1, 0))
	// 0xC0: high nibble 0xC then low nibble 0x0, each strobed E 0-1-0.
	require.Len(t, lines.sets, 6)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1}, lines.sets[0])
	assert.Equal(t, []int{0, 1, 0, 0, 1, 1}, lines.sets[1])
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1}, lines.sets[2])
	assert.Equal(t, []int{0, 1, 0, 0, 0, 0}, lines.sets[4])

	err := d.SetCursor(2, 0)
	require.ErrorIs(t, err, ErrRowOutOfRange)
}

func TestHD44780Write(t *testing.T) {
	d, lines, _ := newTestDisplay(2)

	require.NoError(t, d.Write("ABC"))
	require.Len(t, lines.sets, 12, "text is cut to the display width")
	// 'A' = 0x41 with RS high
	assert.Equal(t, []int{1, 1, 0, 0, 1, 0}, lines.sets[1])
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0}, lines.sets[4])
}

func TestHD44780Init(t *testing.T) {
	d, lines, sleeps := newTestDisplay(16)

	require.NoError(t, d.Init())
	require.Len(t, lines.sets, 36)
	assert.Equal(t, 50*time.Millisecond, (*sleeps)[0])
	assert.Contains(t, *sleeps, 2*time.Millisecond, "clear waits for the controller")
}

func TestHD44780LineError(t *testing.T) {
	d, lines, _ := newTestDisplay(16)
	lines.err = errors.New("line busy")

	require.ErrorContains(t, d.Init(), "line busy")
	require.ErrorContains(t, d.Write("x"), "set lines")
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSink(log.New(&buf), 16)

	require.NoError(t, Apply(s, &logic.Frame{
		Reinit: true,
		Lines:  [2]string{"Current : 12    ", "Maximum : 20    "},
	}))
	require.Equal(t, [2]string{"Current : 12    ", "Maximum : 20    "}, s.Lines())
	assert.Contains(t, buf.String(), "display")
	assert.Contains(t, buf.String(), "Current : 12")

	require.NoError(t, s.SetCursor(0, 10))
	require.NoError(t, s.Write("7 "))
	require.Equal(t, "Current : 7     ", s.Lines()[0])

	require.ErrorIs(t, s.SetCursor(5, 0), ErrRowOutOfRange)
}
