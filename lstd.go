// Package lstd is a standard library extension for Lua scripts embedded with gopher-lua.
// It adds codepoint-aware string helpers, sequence helpers including a stable sort driven
// by a script comparator, standard stream objects and a few scalar utilities.
//
// Register it on a state and require it from scripts:
//
//	L := lua.NewState()
//	lstd.Preload(L, nil)
//	L.DoString(`local lstd = require("lstd"); lstd.print(lstd.stringutil.center("hi", 6, "*"))`)
//
// The module table has the sub-tables stringutil, sequenceutil and io, plus top-level
// functions. stringutil and sequenceutil are also reachable as string and table.
package lstd

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lanrat/lstd/stream"
)

// module is one instance of the library bound to a Config. Its streams are created on
// first use and shared by every state the module is opened in.
type module struct {
	cfg    *Config
	stdout *stream.Stream
	stderr *stream.Stream
}

func newModule(cfg *Config) *module {
	return &module{cfg: mergeConfig(cfg)}
}

func (m *module) stdoutStream() *stream.Stream {
	if m.stdout == nil {
		m.stdout = stream.New("stdout", m.cfg.Stdout)
	}
	return m.stdout
}

func (m *module) stderrStream() *stream.Stream {
	if m.stderr == nil {
		m.stderr = stream.New("stderr", m.cfg.Stderr)
	}
	return m.stderr
}

// Preload registers the module on L under cfg.ModuleName so scripts can require it.
// A nil cfg uses DefaultConfig.
func Preload(L *lua.LState, cfg *Config) {
	m := newModule(cfg)
	L.PreloadModule(m.cfg.ModuleName, m.loader)
}

// Loader returns a lua.LGFunction that pushes a fresh module table, for hosts that manage
// package.preload themselves.
func Loader(cfg *Config) lua.LGFunction {
	return newModule(cfg).loader
}

// Open builds the module table on L without going through require.
func Open(L *lua.LState, cfg *Config) *lua.LTable {
	return newModule(cfg).open(L)
}

func (m *module) loader(L *lua.LState) int {
	L.Push(m.open(L))
	return 1
}

func (m *module) open(L *lua.LState) *lua.LTable {
	exports := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"atob":       atob,
		"btoa":       btoa,
		"chr":        chr,
		"clear":      m.clear,
		"clock":      m.clock,
		"clock_nano": m.clockNano,
		"cwd":        m.cwd,
		"eprint":     m.eprint,
		"eprintnnl":  m.eprintnnl,
		"ord":        ord,
		"print":      m.print,
		"printnnl":   m.printnnl,
		"termsize":   m.termsize,
	})

	strs := openString(L)
	seqs := m.openSequence(L)
	L.SetField(exports, "io", m.openIO(L))
	L.SetField(exports, "stringutil", strs)
	L.SetField(exports, "string", strs)
	L.SetField(exports, "sequenceutil", seqs)
	L.SetField(exports, "table", seqs)

	m.cfg.Logger.Debug("module opened", "name", m.cfg.ModuleName)
	return exports
}
