package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lanrat/lstd/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	verbose bool
	cfgFile string

	// appConfig and logger are set up by initRootConfig before any command runs
	appConfig      = config.DefaultConfig()
	configResolved string
	logger         = log.NewWithOptions(os.Stderr, log.Options{Prefix: config.AppName})

	rootCmd = &cobra.Command{
		Use:   "lstd",
		Short: "Run Lua scripts with the lstd standard library extension",
		Long: TitleStyle.Render("lstd") + SubtitleStyle.Render(" - Lua with batteries") + `

lstd runs Lua scripts with an extended standard library preloaded:
codepoint-aware string helpers, sequence helpers with a stable sort,
standard streams and small scalar utilities.

` + SubtitleStyle.Render("Examples:") + `
  lstd run script.lua           Run a script
  lstd run -j 4 a.lua b.lua     Run scripts in parallel
  lstd repl                     Start an interactive session
  lstd config                   Show the effective configuration`,
		SilenceUsage: true,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/lstd/config.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command and exits with the code carried by an ExitError.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and environment, then applies the flags on top.
func initRootConfig() {
	cfg, path, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	} else {
		appConfig = cfg
		configResolved = path
	}

	if !verbose {
		verbose = appConfig.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("configuration loaded", "file", configResolved, "jobs", appConfig.Jobs)
}
