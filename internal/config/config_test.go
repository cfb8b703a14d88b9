package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, path, err := Load(LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("expected no config file, got %q", path)
	}
	d := DefaultConfig()
	if cfg.Jobs != d.Jobs || cfg.MaxCloneDepth != 10000 || cfg.ModuleName != "lstd" || cfg.Verbose {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	want := writeConfig(t, dir, "jobs: 3\nmax_clone_depth: 64\nmodule_name: std\nverbose: true\n")

	cfg, path, err := Load(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatal(err)
	}
	if path != want {
		t.Errorf("resolved %q, want %q", path, want)
	}
	if cfg.Jobs != 3 || cfg.MaxCloneDepth != 64 || cfg.ModuleName != "std" || !cfg.Verbose {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "history_file: /tmp/h\n")
	cfg, resolved, err := Load(LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatal(err)
	}
	if resolved != path || cfg.HistoryFile != "/tmp/h" {
		t.Errorf("got %+v from %q", cfg, resolved)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "jobs: 3\n")
	t.Setenv("LSTD_JOBS", "7")

	cfg, _, err := Load(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Jobs != 7 {
		t.Errorf("jobs = %d, want 7", cfg.Jobs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{Jobs: 1, MaxCloneDepth: 1, ModuleName: "lstd"}, true},
		{"no jobs", Config{Jobs: 0, MaxCloneDepth: 1, ModuleName: "lstd"}, false},
		{"no depth", Config{Jobs: 1, MaxCloneDepth: 0, ModuleName: "lstd"}, false},
		{"no name", Config{Jobs: 1, MaxCloneDepth: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestInvalidFileValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "jobs: 0\n")
	if _, _, err := Load(LoadOptions{ConfigDirPath: dir}); err == nil {
		t.Error("expected validation error")
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/xdg", AppName) {
		t.Errorf("Dir() = %q", dir)
	}
}
