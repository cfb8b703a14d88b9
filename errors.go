package lstd

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Errors raised to scripts. Their messages are stable and scripts may match on them.
var (
	ErrInvalidCodepoint = errors.New("invalid codepoint")
	ErrEmptyString      = errors.New("empty string was passed")
	ErrCwd              = errors.New("unable to get cwd")
	ErrClearScreen      = errors.New("couldn't clear screen")
	ErrTermSize         = errors.New("couldn't get terminal size")
)

// DepthError is raised by deepclone when tables nest deeper than Config.MaxCloneDepth,
// which is what a self-referencing table eventually does.
type DepthError struct {
	// Max is the configured limit
	Max int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("maximum clone depth exceeded (%d)", e.Max)
}

// ResultError represents a callback that returned a value of the wrong type
type ResultError struct {
	// Callback names the role of the function, such as "comparator"
	Callback string
	// Want is the expected Lua type
	Want string
	// Got is the Lua type that was returned
	Got string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s must return a %s, got %s", e.Callback, e.Want, e.Got)
}

// raise signals err to the calling script. Errors coming back from a script callback are
// re-raised with their original error value; everything else is raised as its message
// without a position prefix.
func raise(L *lua.LState, err error) {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		L.Error(apiErr.Object, 0)
		return
	}
	L.Error(lua.LString(err.Error()), 0)
}
