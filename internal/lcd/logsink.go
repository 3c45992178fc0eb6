package lcd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// LogSink mirrors the display to a logger, one line per completed frame.
// Useful on a bench without a display attached.
type LogSink struct {
	logger *log.Logger
	width  int
	rows   [Rows][]byte
	row    int
	col    int
}

// NewLogSink creates a sink logging through logger.
func NewLogSink(logger *log.Logger, width int) *LogSink {
	s := &LogSink{logger: logger, width: width}
	s.clear()
	return s
}

func (s *LogSink) clear() {
	for i := range s.rows {
		s.rows[i] = []byte(strings.Repeat(" ", s.width))
	}
	s.row, s.col = 0, 0
}

// Init clears the virtual display.
func (s *LogSink) Init() error {
	s.clear()
	s.logger.Debug("display init")
	return nil
}

// SetCursor moves the write position.
func (s *LogSink) SetCursor(row, col int) error {
	if row < 0 || row >= Rows {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	s.row, s.col = row, col
	return nil
}

// Write stores text at the cursor and, once the last row is written, logs
// the whole display.
func (s *LogSink) Write(text string) error {
	line := s.rows[s.row]
	for i := 0; i < len(text) && s.col < len(line); i++ {
		line[s.col] = text[i]
		s.col++
	}
	if s.row == Rows-1 {
		s.logger.Info("display", "line1", string(s.rows[0]), "line2", string(s.rows[1]))
	}
	return nil
}

// Lines returns the current content of the virtual display.
func (s *LogSink) Lines() [Rows]string {
	return [Rows]string{string(s.rows[0]), string(s.rows[1])}
}
