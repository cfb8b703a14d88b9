// Package runner executes Lua scripts with the lstd module preloaded, several at a time.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/sync/errgroup"

	"github.com/lanrat/lstd"
)

// Config controls a Runner.
type Config struct {
	Jobs          int         // maximum number of scripts running at once
	ModuleName    string      // name scripts require the module under
	MaxCloneDepth int         // forwarded to the module
	Stdout        io.Writer   // script standard output, shared by concurrent scripts
	Stderr        io.Writer   // script standard error, shared by concurrent scripts
	Logger        *log.Logger // progress logging, discarded when nil
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Jobs:       1,
		ModuleName: "lstd",
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     log.New(io.Discard),
	}
}

func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	m := *c
	if m.Jobs <= 0 {
		m.Jobs = d.Jobs
	}
	if m.ModuleName == "" {
		m.ModuleName = d.ModuleName
	}
	if m.Stdout == nil {
		m.Stdout = d.Stdout
	}
	if m.Stderr == nil {
		m.Stderr = d.Stderr
	}
	if m.Logger == nil {
		m.Logger = d.Logger
	}
	return &m
}

// ScriptError reports the script that failed.
type ScriptError struct {
	Path string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Runner runs scripts. A Runner may be reused but is not safe for concurrent calls to Run.
type Runner struct {
	cfg *Config
}

// New returns a Runner. A nil cfg uses DefaultConfig.
func New(cfg *Config) *Runner {
	return &Runner{cfg: mergeConfig(cfg)}
}

// NewState returns a fresh interpreter with the module preloaded, as every script gets.
// The caller must Close it.
func (r *Runner) NewState() *lua.LState {
	L := lua.NewState()
	lstd.Preload(L, &lstd.Config{
		ModuleName:    r.cfg.ModuleName,
		Stdout:        r.cfg.Stdout,
		Stderr:        r.cfg.Stderr,
		MaxCloneDepth: r.cfg.MaxCloneDepth,
		Logger:        r.cfg.Logger,
	})
	return L
}

// Run executes every path, at most Jobs at a time, each in its own interpreter.
// The first failure cancels the scripts still running and is returned as a *ScriptError.
func (r *Runner) Run(ctx context.Context, paths ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Jobs)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			return r.runFile(ctx, path)
		})
	}
	return g.Wait()
}

func (r *Runner) runFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return &ScriptError{Path: path, Err: err}
	}

	L := r.NewState()
	defer L.Close()
	L.SetContext(ctx)

	start := time.Now()
	r.cfg.Logger.Debug("script started", "path", path)
	if err := L.DoFile(path); err != nil {
		r.cfg.Logger.Error("script failed", "path", path, "err", err)
		return &ScriptError{Path: path, Err: err}
	}
	r.cfg.Logger.Debug("script finished", "path", path, "elapsed", time.Since(start))
	return nil
}

// RunString executes src as a chunk named name in a fresh interpreter.
func (r *Runner) RunString(ctx context.Context, name, src string) error {
	L := r.NewState()
	defer L.Close()
	L.SetContext(ctx)

	fn, err := L.Load(strings.NewReader(src), name)
	if err != nil {
		return &ScriptError{Path: name, Err: err}
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return &ScriptError{Path: name, Err: err}
	}
	return nil
}
