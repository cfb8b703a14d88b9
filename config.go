package lstd

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Config holds configuration settings for an lstd module instance
type Config struct {
	ModuleName    string                 // name scripts pass to require
	Stdout        io.Writer              // sink behind io.stdout, print, printnnl and clear
	Stderr        io.Writer              // sink behind io.stderr, eprint and eprintnnl
	Now           func() time.Time       // clock source for clock and clock_nano
	Getwd         func() (string, error) // working directory source for cwd
	MaxCloneDepth int                    // nesting limit for deepclone
	Logger        *log.Logger            // debug logging, discarded when nil
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		ModuleName:    "lstd",
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Now:           time.Now,
		Getwd:         os.Getwd,
		MaxCloneDepth: 10000,
		Logger:        log.New(io.Discard),
	}
}

// mergeConfig returns a copy of the provided config with any values not set replaced by
// the defaults. The caller's Config is left untouched.
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	m := *c
	if m.ModuleName == "" {
		m.ModuleName = d.ModuleName
	}
	if m.Stdout == nil {
		m.Stdout = d.Stdout
	}
	if m.Stderr == nil {
		m.Stderr = d.Stderr
	}
	if m.Now == nil {
		m.Now = d.Now
	}
	if m.Getwd == nil {
		m.Getwd = d.Getwd
	}
	if m.MaxCloneDepth <= 0 {
		m.MaxCloneDepth = d.MaxCloneDepth
	}
	if m.Logger == nil {
		m.Logger = d.Logger
	}
	return &m
}
