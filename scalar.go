package lstd

import (
	"encoding/base64"
	"strings"
	"time"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/lanrat/lstd/stream"
)

// clearSequence erases the display and homes the cursor.
const clearSequence = "\033[2J\033[H"

// atob decodes base64, padded or not. Input that does not decode yields "".
func atob(L *lua.LState) int {
	s := strings.TrimRight(L.CheckString(1), "=")
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		b = nil
	}
	L.Push(lua.LString(b))
	return 1
}

func btoa(L *lua.LState) int {
	L.Push(lua.LString(base64.StdEncoding.EncodeToString([]byte(L.CheckString(1)))))
	return 1
}

func chr(L *lua.LState) int {
	n := L.CheckInt64(1)
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		raise(L, ErrInvalidCodepoint)
		return 0
	}
	L.Push(lua.LString(string(rune(n))))
	return 1
}

func ord(L *lua.LState) int {
	s := L.CheckString(1)
	if s == "" {
		raise(L, ErrEmptyString)
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	L.Push(lua.LNumber(r))
	return 1
}

// sinceEpoch splits the time elapsed since the Unix epoch into whole seconds, truncated
// toward zero, and the remaining nanoseconds, which are never negative.
func sinceEpoch(t time.Time) (int64, int64) {
	secs := t.Unix()
	nanos := int64(t.Nanosecond())
	if secs < 0 && nanos > 0 {
		secs++
		nanos = int64(time.Second) - nanos
	}
	return secs, nanos
}

func (m *module) clock(L *lua.LState) int {
	secs, _ := sinceEpoch(m.cfg.Now())
	L.Push(lua.LNumber(secs))
	return 1
}

func (m *module) clockNano(L *lua.LState) int {
	secs, nanos := sinceEpoch(m.cfg.Now())
	L.Push(lua.LNumber(secs))
	L.Push(lua.LNumber(nanos))
	return 2
}

func (m *module) cwd(L *lua.LState) int {
	dir, err := m.cfg.Getwd()
	if err != nil {
		m.cfg.Logger.Debug("getwd failed", "err", err)
		raise(L, ErrCwd)
		return 0
	}
	L.Push(lua.LString(dir))
	return 1
}

func (m *module) clear(L *lua.LState) int {
	out := m.stdoutStream()
	if err := out.WriteString(clearSequence); err != nil {
		m.cfg.Logger.Debug("clear screen failed", "err", err)
		raise(L, ErrClearScreen)
		return 0
	}
	if err := out.Flush(); err != nil {
		raise(L, ErrClearScreen)
	}
	return 0
}

func (m *module) termsize(L *lua.LState) int {
	w, h, err := m.stdoutStream().Size()
	if err != nil {
		m.cfg.Logger.Debug("terminal size unavailable", "err", err)
		raise(L, ErrTermSize)
		return 0
	}
	L.Push(lua.LNumber(w))
	L.Push(lua.LNumber(h))
	return 2
}

// joinArgs returns every argument as a string, separated by tabs.
func joinArgs(L *lua.LState) string {
	top := L.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, L.CheckString(i))
	}
	return strings.Join(parts, "\t")
}

func printTo(L *lua.LState, out *stream.Stream, line string, flush bool) int {
	if err := out.WriteString(line); err != nil {
		raise(L, err)
		return 0
	}
	if flush {
		// flush failures are ignored, the text was already handed over
		_ = out.Flush()
	}
	return 0
}

func (m *module) print(L *lua.LState) int {
	return printTo(L, m.stdoutStream(), joinArgs(L)+"\n", false)
}

func (m *module) printnnl(L *lua.LState) int {
	return printTo(L, m.stdoutStream(), joinArgs(L), true)
}

func (m *module) eprint(L *lua.LState) int {
	return printTo(L, m.stderrStream(), joinArgs(L)+"\n", false)
}

func (m *module) eprintnnl(L *lua.LState) int {
	return printTo(L, m.stderrStream(), joinArgs(L), true)
}
