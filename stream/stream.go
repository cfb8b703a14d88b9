// Package stream implements the minimal output stream objects exposed to scripts:
// always open, never readable, and writing every call in a single underlying Write.
package stream

import (
	"errors"
	"io"

	"golang.org/x/term"
)

var (
	// ErrFlush is reported when the sink fails to flush.
	ErrFlush = errors.New("couldn't flush")
	// ErrWrite is reported when the sink fails to accept a write.
	ErrWrite = errors.New("couldn't write")
	// ErrNotTerminal is reported by Size when the sink has no terminal behind it.
	ErrNotTerminal = errors.New("not a terminal")
)

// IOError keeps the sink's own error behind one of the stable messages above.
type IOError struct {
	// Kind is ErrFlush or ErrWrite
	Kind error
	// Err is the error returned by the sink
	Err error
}

func (e *IOError) Error() string {
	return e.Kind.Error()
}

func (e *IOError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Stream wraps a process-wide sink such as standard output. Closing is a no-op and the
// stream always reports itself open, so scripts cannot shut the process's output.
// Stream has no internal locking.
type Stream struct {
	name string
	w    io.Writer
}

// New returns a Stream named name writing into w.
func New(name string, w io.Writer) *Stream {
	return &Stream{name: name, w: w}
}

// Name returns the name the stream was created with.
func (s *Stream) Name() string {
	return s.name
}

// Writer returns the sink behind the stream.
func (s *Stream) Writer() io.Writer {
	return s.w
}

// Close does nothing and always succeeds.
func (s *Stream) Close() error {
	return nil
}

// Closed always reports false.
func (s *Stream) Closed() bool {
	return false
}

// Readable always reports false.
func (s *Stream) Readable() bool {
	return false
}

// Writable always reports true.
func (s *Stream) Writable() bool {
	return true
}

// Flush flushes the sink when it buffers output.
func (s *Stream) Flush() error {
	f, ok := s.w.(Flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return &IOError{Kind: ErrFlush, Err: err}
	}
	return nil
}

// TTY reports whether the sink is attached to a terminal.
func (s *Stream) TTY() bool {
	if t, ok := s.w.(Terminal); ok {
		return t.IsTerminal()
	}
	if f, ok := s.w.(fder); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Size returns the dimensions of the terminal behind the sink.
func (s *Stream) Size() (width, height int, err error) {
	if sz, ok := s.w.(Sizer); ok {
		return sz.Size()
	}
	if f, ok := s.w.(fder); ok {
		return term.GetSize(int(f.Fd()))
	}
	return 0, 0, ErrNotTerminal
}

// Write concatenates parts and hands them to the sink in a single Write call.
func (s *Stream) Write(parts ...[]byte) error {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return s.write(buf)
}

// WriteString is Write for strings.
func (s *Stream) WriteString(parts ...string) error {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return s.write(buf)
}

func (s *Stream) write(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if _, err := s.w.Write(buf); err != nil {
		return &IOError{Kind: ErrWrite, Err: err}
	}
	return nil
}
