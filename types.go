package lstd

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lanrat/lstd/sequence"
)

// tableSequence adapts a Lua table to sequence.Sequence. Access is raw: __index and
// __newindex are not consulted, and nil is the hole that ends a sequence.
type tableSequence struct {
	t *lua.LTable
}

func (s tableSequence) Get(i int) (lua.LValue, bool) {
	v := s.t.RawGetInt(i)
	return v, v != nil && v != lua.LNil
}

func (s tableSequence) Set(i int, v lua.LValue) {
	s.t.RawSetInt(i, v)
}

func (s tableSequence) Delete(i int) {
	s.t.RawSetInt(i, lua.LNil)
}

// call invokes fn with args in protected mode and returns its single result.
// A failing fn comes back as the *lua.ApiError carrying the script's error value.
func call(L *lua.LState, fn *lua.LFunction, args ...lua.LValue) (lua.LValue, error) {
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		return lua.LNil, err
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// comparator turns a script function returning a signed number into a sequence.Compare.
func comparator(L *lua.LState, fn *lua.LFunction) sequence.Compare[lua.LValue] {
	return func(a, b lua.LValue) (int, error) {
		ret, err := call(L, fn, a, b)
		if err != nil {
			return 0, err
		}
		n, ok := ret.(lua.LNumber)
		if !ok {
			return 0, &ResultError{Callback: "comparator", Want: "number", Got: ret.Type().String()}
		}
		switch {
		case n < 0:
			return -1, nil
		case n > 0:
			return 1, nil
		}
		return 0, nil
	}
}

// predicate turns a script function into a sequence.Predicate using Lua truthiness.
func predicate(L *lua.LState, fn *lua.LFunction) sequence.Predicate[lua.LValue] {
	return func(v lua.LValue) (bool, error) {
		ret, err := call(L, fn, v)
		if err != nil {
			return false, err
		}
		return lua.LVAsBool(ret), nil
	}
}

// mapper turns a script function into a sequence.Mapper.
func mapper(L *lua.LState, fn *lua.LFunction) sequence.Mapper[lua.LValue, lua.LValue] {
	return func(v lua.LValue) (lua.LValue, error) {
		return call(L, fn, v)
	}
}
