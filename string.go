package lstd

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lanrat/lstd/text"
)

func openString(L *lua.LState) *lua.LTable {
	exports := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"capitalize": strCapitalize,
		"center":     strCenter,
		"contains":   strContains,
		"count":      strCount,
		"endswith":   strEndsWith,
		"expandtabs": strExpandTabs,
		"find":       strFind,
		"index":      strIndex,
		"isascii":    strIsASCII,
		"len":        strLen,
		"max":        strMax,
		"min":        strMin,
		"rep":        strRep,
		"reverse":    strReverse,
		"slice":      strSlice,
	})
	L.SetField(exports, "asciiletters", lua.LString(text.ASCIILetters))
	L.SetField(exports, "asciilowercase", lua.LString(text.ASCIILowercase))
	L.SetField(exports, "asciiuppercase", lua.LString(text.ASCIIUppercase))
	L.SetField(exports, "digits", lua.LString(text.Digits))
	return exports
}

func strCapitalize(L *lua.LState) int {
	L.Push(lua.LString(text.Capitalize(L.CheckString(1))))
	return 1
}

func strCenter(L *lua.LState) int {
	s := L.CheckString(1)
	width := L.CheckInt(2)
	fill := L.OptString(3, " ")
	L.Push(lua.LString(text.Center(s, width, fill)))
	return 1
}

func strContains(L *lua.LState) int {
	L.Push(lua.LBool(text.Contains(L.CheckString(1), L.CheckString(2))))
	return 1
}

func strCount(L *lua.LState) int {
	L.Push(lua.LNumber(text.Count(L.CheckString(1), L.CheckString(2))))
	return 1
}

func strEndsWith(L *lua.LState) int {
	L.Push(lua.LBool(text.EndsWith(L.CheckString(1), L.CheckString(2))))
	return 1
}

func strExpandTabs(L *lua.LState) int {
	s := L.CheckString(1)
	size := L.OptInt(2, text.DefaultTabSize)
	L.Push(lua.LString(text.ExpandTabs(s, size)))
	return 1
}

func strFind(L *lua.LState) int {
	L.Push(lua.LNumber(text.Find(L.CheckString(1), L.CheckString(2))))
	return 1
}

func strIndex(L *lua.LState) int {
	c, err := text.Index(L.CheckString(1), L.CheckInt(2))
	if err != nil {
		raise(L, err)
		return 0
	}
	L.Push(lua.LString(c))
	return 1
}

func strIsASCII(L *lua.LState) int {
	L.Push(lua.LBool(text.IsASCII(L.CheckString(1))))
	return 1
}

func strLen(L *lua.LState) int {
	L.Push(lua.LNumber(text.Len(L.CheckString(1))))
	return 1
}

func strMax(L *lua.LState) int {
	L.Push(lua.LString(text.Max(L.CheckString(1))))
	return 1
}

func strMin(L *lua.LState) int {
	L.Push(lua.LString(text.Min(L.CheckString(1))))
	return 1
}

func strRep(L *lua.LState) int {
	L.Push(lua.LString(text.Rep(L.CheckString(1), L.CheckInt(2))))
	return 1
}

func strReverse(L *lua.LState) int {
	L.Push(lua.LString(text.Reverse(L.CheckString(1))))
	return 1
}

func strSlice(L *lua.LState) int {
	s, err := text.Slice(L.CheckString(1), L.CheckInt(2), L.CheckInt(3))
	if err != nil {
		raise(L, err)
		return 0
	}
	L.Push(lua.LString(s))
	return 1
}
