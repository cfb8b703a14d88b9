package lstd

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lanrat/lstd/sequence"
)

func (m *module) openSequence(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"assign":    seqAssign,
		"clone":     seqClone,
		"concat":    seqConcat,
		"contains":  seqContains,
		"deepclone": m.seqDeepClone,
		"every":     seqEvery,
		"len":       seqLen,
		"map":       seqMap,
		"pop":       seqPop,
		"push":      seqPush,
		"reverse":   seqReverse,
		"some":      seqSome,
		"sort":      m.seqSort,
	})
}

func checkSequence(L *lua.LState, n int) tableSequence {
	return tableSequence{t: L.CheckTable(n)}
}

// seqAssign copies every pair of src into dest through normal assignment, so a __newindex
// on dest applies, then gives dest the metatable of src when src has one.
func seqAssign(L *lua.LState) int {
	dest := L.CheckTable(1)
	src := L.CheckTable(2)
	src.ForEach(func(k, v lua.LValue) {
		L.SetTable(dest, k, v)
	})
	if mt := L.GetMetatable(src); mt != lua.LNil {
		L.SetMetatable(dest, mt)
	}
	return 0
}

func seqClone(L *lua.LState) int {
	src := L.CheckTable(1)
	out := L.NewTable()
	src.ForEach(func(k, v lua.LValue) {
		out.RawSet(k, v)
	})
	L.SetMetatable(out, L.GetMetatable(src))
	L.Push(out)
	return 1
}

func (m *module) seqDeepClone(L *lua.LState) int {
	L.Push(m.deepClone(L, L.CheckTable(1), 1))
	return 1
}

// deepClone copies src and every table reachable through its values. Metatables are
// shared with the source. Tables reached twice are copied twice.
func (m *module) deepClone(L *lua.LState, src *lua.LTable, depth int) *lua.LTable {
	if depth > m.cfg.MaxCloneDepth {
		raise(L, &DepthError{Max: m.cfg.MaxCloneDepth})
		return nil
	}
	out := L.NewTable()
	src.ForEach(func(k, v lua.LValue) {
		if nested, ok := v.(*lua.LTable); ok {
			v = m.deepClone(L, nested, depth+1)
		}
		out.RawSet(k, v)
	})
	L.SetMetatable(out, L.GetMetatable(src))
	return out
}

func seqConcat(L *lua.LState) int {
	out := L.NewTable()
	dst := tableSequence{t: out}
	top := L.GetTop()
	srcs := make([]sequence.Sequence[lua.LValue], 0, top)
	for i := 1; i <= top; i++ {
		srcs = append(srcs, checkSequence(L, i))
	}
	sequence.Concat[lua.LValue](dst, srcs...)
	L.Push(out)
	return 1
}

func seqContains(L *lua.LState) int {
	seq := checkSequence(L, 1)
	v := L.CheckAny(2)
	L.Push(lua.LBool(sequence.Contains[lua.LValue](seq, v, L.Equal)))
	return 1
}

func seqEvery(L *lua.LState) int {
	seq := checkSequence(L, 1)
	fn := L.CheckFunction(2)
	ok, err := sequence.Every[lua.LValue](seq, predicate(L, fn))
	if err != nil {
		raise(L, err)
		return 0
	}
	L.Push(lua.LBool(ok))
	return 1
}

func seqSome(L *lua.LState) int {
	seq := checkSequence(L, 1)
	fn := L.CheckFunction(2)
	ok, err := sequence.Some[lua.LValue](seq, predicate(L, fn))
	if err != nil {
		raise(L, err)
		return 0
	}
	L.Push(lua.LBool(ok))
	return 1
}

func seqMap(L *lua.LState) int {
	seq := checkSequence(L, 1)
	fn := L.CheckFunction(2)
	out := L.NewTable()
	if err := sequence.Map[lua.LValue, lua.LValue](seq, tableSequence{t: out}, mapper(L, fn)); err != nil {
		raise(L, err)
		return 0
	}
	L.Push(out)
	return 1
}

func seqLen(L *lua.LState) int {
	L.Push(lua.LNumber(sequence.Len[lua.LValue](checkSequence(L, 1))))
	return 1
}

func seqPush(L *lua.LState) int {
	seq := checkSequence(L, 1)
	top := L.GetTop()
	values := make([]lua.LValue, 0, top)
	for i := 2; i <= top; i++ {
		values = append(values, L.Get(i))
	}
	L.Push(lua.LNumber(sequence.Push[lua.LValue](seq, values...)))
	return 1
}

func seqPop(L *lua.LState) int {
	v, ok := sequence.Pop[lua.LValue](checkSequence(L, 1))
	if !ok {
		v = lua.LNil
	}
	L.Push(v)
	return 1
}

func seqReverse(L *lua.LState) int {
	sequence.Reverse[lua.LValue](checkSequence(L, 1))
	return 0
}

func (m *module) seqSort(L *lua.LState) int {
	seq := checkSequence(L, 1)
	fn := L.CheckFunction(2)
	if err := sequence.Sort[lua.LValue](seq, comparator(L, fn)); err != nil {
		m.cfg.Logger.Debug("sort aborted", "err", err)
		raise(L, err)
	}
	return 0
}
