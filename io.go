package lstd

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lanrat/lstd/stream"
)

// streamTypeName is the registry key of the stream metatable.
const streamTypeName = "lstd.stream"

var streamMethods = map[string]lua.LGFunction{
	"close":    streamClose,
	"closed":   streamClosed,
	"flush":    streamFlush,
	"readable": streamReadable,
	"tty":      streamTTY,
	"writable": streamWritable,
	"write":    streamWrite,
}

func (m *module) openIO(L *lua.LState) *lua.LTable {
	mt := L.NewTypeMetatable(streamTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), streamMethods))
	L.SetField(mt, "__tostring", L.NewFunction(streamToString))

	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"stdout": func(L *lua.LState) int {
			L.Push(newStreamUserData(L, m.stdoutStream()))
			return 1
		},
		"stderr": func(L *lua.LState) int {
			L.Push(newStreamUserData(L, m.stderrStream()))
			return 1
		},
	})
}

func newStreamUserData(L *lua.LState, s *stream.Stream) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = s
	L.SetMetatable(ud, L.GetTypeMetatable(streamTypeName))
	return ud
}

func checkStream(L *lua.LState) *stream.Stream {
	ud := L.CheckUserData(1)
	if s, ok := ud.Value.(*stream.Stream); ok {
		return s
	}
	L.ArgError(1, "stream expected")
	return nil
}

func streamClose(L *lua.LState) int {
	if err := checkStream(L).Close(); err != nil {
		raise(L, err)
	}
	return 0
}

func streamClosed(L *lua.LState) int {
	L.Push(lua.LBool(checkStream(L).Closed()))
	return 1
}

func streamFlush(L *lua.LState) int {
	if err := checkStream(L).Flush(); err != nil {
		raise(L, err)
	}
	return 0
}

func streamReadable(L *lua.LState) int {
	L.Push(lua.LBool(checkStream(L).Readable()))
	return 1
}

func streamTTY(L *lua.LState) int {
	L.Push(lua.LBool(checkStream(L).TTY()))
	return 1
}

func streamWritable(L *lua.LState) int {
	L.Push(lua.LBool(checkStream(L).Writable()))
	return 1
}

// streamWrite writes the raw bytes of every argument after the stream in one call.
func streamWrite(L *lua.LState) int {
	s := checkStream(L)
	top := L.GetTop()
	parts := make([]string, 0, top)
	for i := 2; i <= top; i++ {
		parts = append(parts, L.CheckString(i))
	}
	if err := s.WriteString(parts...); err != nil {
		raise(L, err)
	}
	return 0
}

func streamToString(L *lua.LState) int {
	L.Push(lua.LString("stream(" + checkStream(L).Name() + ")"))
	return 1
}
