package stream

import (
	"bytes"
)

// MockWriter provides an in-memory sink for a Stream.
// It records everything written, counts calls, and can be told to fail or to behave like
// a terminal. This is useful for testing scripts without touching the process's
// standard output.
type MockWriter struct {
	data *bytes.Buffer

	// Writes is the number of Write calls received.
	Writes int
	// Flushes is the number of Flush calls received.
	Flushes int

	// WriteErr, when set, is returned by Write instead of storing data.
	WriteErr error
	// FlushErr, when set, is returned by Flush.
	FlushErr error

	// Terminal is reported by IsTerminal.
	Terminal bool
	// Width and Height are reported by Size when Terminal is set.
	Width, Height int
}

// Mock creates a new MockWriter with the specified initial capacity.
func Mock(n int) *MockWriter {
	var m MockWriter
	m.data = bytes.NewBuffer(make([]byte, 0, n))
	return &m
}

// Write appends p to the in-memory buffer.
func (m *MockWriter) Write(p []byte) (int, error) {
	m.Writes++
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	return m.data.Write(p)
}

// Flush counts the call and returns FlushErr.
func (m *MockWriter) Flush() error {
	m.Flushes++
	return m.FlushErr
}

// IsTerminal returns m.Terminal.
func (m *MockWriter) IsTerminal() bool {
	return m.Terminal
}

// Size returns the configured dimensions, or ErrNotTerminal when Terminal is unset.
func (m *MockWriter) Size() (int, int, error) {
	if !m.Terminal {
		return 0, 0, ErrNotTerminal
	}
	return m.Width, m.Height, nil
}

// String returns everything written so far.
func (m *MockWriter) String() string {
	return m.data.String()
}

// Reset discards the recorded output and counters.
func (m *MockWriter) Reset() {
	m.data.Reset()
	m.Writes = 0
	m.Flushes = 0
}
