package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanrat/lstd/internal/runner"
)

var jobs int

var runCmd = &cobra.Command{
	Use:   "run [flags] script.lua...",
	Short: "Run one or more Lua scripts",
	Long: `Run executes each script in its own interpreter with the module preloaded.
Scripts run in parallel up to --jobs at a time; the first failure stops the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScripts,
}

func init() {
	runCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "maximum scripts running at once (default from config)")
}

func newRunner(cmd *cobra.Command) *runner.Runner {
	n := appConfig.Jobs
	if cmd.Flags().Changed("jobs") {
		n = jobs
	}
	return runner.New(&runner.Config{
		Jobs:          n,
		ModuleName:    appConfig.ModuleName,
		MaxCloneDepth: appConfig.MaxCloneDepth,
		Stdout:        cmd.OutOrStdout(),
		Stderr:        cmd.ErrOrStderr(),
		Logger:        logger,
	})
}

func runScripts(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("jobs") && jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
	}
	if err := newRunner(cmd).Run(cmd.Context(), args...); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("error: ")+err.Error())
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}
