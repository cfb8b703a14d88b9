// Package config loads the lstd command line configuration from defaults, an optional
// YAML file and LSTD_ environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also used as the config directory name.
	AppName = "lstd"
	// EnvPrefix prefixes environment overrides, as in LSTD_JOBS.
	EnvPrefix = "LSTD"
	// ConfigFileName is the name of the config file without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
)

// Config is the effective configuration of the lstd command.
type Config struct {
	// Jobs bounds how many scripts run at once.
	Jobs int `mapstructure:"jobs"`
	// MaxCloneDepth is passed to the module's deepclone.
	MaxCloneDepth int `mapstructure:"max_clone_depth"`
	// HistoryFile is where the REPL keeps its history. Empty disables history.
	HistoryFile string `mapstructure:"history_file"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
	// ModuleName is the name scripts require.
	ModuleName string `mapstructure:"module_name"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".lstd_history")
	}
	return &Config{
		Jobs:          runtime.NumCPU(),
		MaxCloneDepth: 10000,
		HistoryFile:   history,
		Verbose:       false,
		ModuleName:    "lstd",
	}
}

// LoadOptions selects where Load looks for a config file.
type LoadOptions struct {
	// ConfigFilePath, when set, is the only file read and must exist.
	ConfigFilePath string
	// ConfigDirPath replaces Dir() when searching for config.yaml.
	ConfigDirPath string
}

// Dir returns $XDG_CONFIG_HOME/lstd, falling back to ~/.config/lstd.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// Load builds the effective configuration. It returns the config and the path of the file
// that was read, empty when defaults and environment were enough.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("max_clone_depth", defaults.MaxCloneDepth)
	v.SetDefault("history_file", defaults.HistoryFile)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("module_name", defaults.ModuleName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType(ConfigFileExt)
	resolved := ""
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", opts.ConfigFilePath, err)
		}
		resolved = opts.ConfigFilePath
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			var err error
			if dir, err = Dir(); err != nil {
				return nil, "", err
			}
		}
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("failed to read config: %w", err)
			}
		} else {
			resolved = v.ConfigFileUsed()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

// Validate rejects values the command cannot run with.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.MaxCloneDepth < 1 {
		return fmt.Errorf("max_clone_depth must be at least 1, got %d", c.MaxCloneDepth)
	}
	if c.ModuleName == "" {
		return errors.New("module_name must not be empty")
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
