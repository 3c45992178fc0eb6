package gpio

import (
	"errors"

	"github.com/sweeney/gate-counter/internal/logic"
)

// FakeReader is a test double that returns scripted input samples.
type FakeReader struct {
	// Samples contains scripted input levels to return.
	// Each call to Read() consumes the next sample.
	Samples []logic.Inputs

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Read()
	ReadError error
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []logic.Inputs) *FakeReader {
	return &FakeReader{Samples: samples}
}

// Read returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeReader) Read() (logic.Inputs, error) {
	if f.ReadError != nil {
		return logic.Inputs{}, f.ReadError
	}

	if len(f.Samples) == 0 {
		return logic.Inputs{}, errors.New("no samples configured")
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// FakeWriter records every output write for test assertions.
type FakeWriter struct {
	// Writes contains all output levels written, in order.
	Writes []Outputs

	// WriteError, if set, will be returned by Write().
	WriteError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeWriter creates a FakeWriter for testing.
func NewFakeWriter() *FakeWriter {
	return &FakeWriter{}
}

// Write records the output levels.
func (f *FakeWriter) Write(o Outputs) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Writes = append(f.Writes, o)
	return nil
}

// Last returns the most recent write, or all-low if nothing was written.
func (f *FakeWriter) Last() Outputs {
	if len(f.Writes) == 0 {
		return Outputs{}
	}
	return f.Writes[len(f.Writes)-1]
}

// Close marks the writer as closed.
func (f *FakeWriter) Close() error {
	f.Closed = true
	return nil
}
