package stream

// Flusher is implemented by sinks that buffer output.
// Stream.Flush calls it; sinks without it have nothing to flush.
type Flusher interface {
	// Flush pushes buffered bytes to the underlying device.
	Flush() error
}

// Terminal is implemented by sinks that know whether they are attached to a terminal.
// It takes precedence over file descriptor inspection, which lets in-memory sinks
// pretend to be a terminal.
type Terminal interface {
	// IsTerminal reports whether the sink is a terminal.
	IsTerminal() bool
}

// Sizer is implemented by sinks that can report terminal dimensions.
type Sizer interface {
	// Size returns the width and height of the terminal in cells.
	Size() (width, height int, err error)
}

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}
