package lcd

import "fmt"

// Fake records every call for test assertions.
type Fake struct {
	// Calls holds one entry per call, e.g. "init", "cursor 1,0", "write Current : 3".
	Calls []string
	// Inits counts Init calls.
	Inits int
	// Err, if set, is returned by every call.
	Err error
}

// Init records an initialization.
func (f *Fake) Init() error {
	f.Calls = append(f.Calls, "init")
	f.Inits++
	return f.Err
}

// SetCursor records a cursor move.
func (f *Fake) SetCursor(row, col int) error {
	f.Calls = append(f.Calls, fmt.Sprintf("cursor %d,%d", row, col))
	return f.Err
}

// Write records written text.
func (f *Fake) Write(text string) error {
	f.Calls = append(f.Calls, "write "+text)
	return f.Err
}
