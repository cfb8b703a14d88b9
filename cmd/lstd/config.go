package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lanrat/lstd/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderConfig(cmd.OutOrStdout(), appConfig, configResolved)
		return nil
	},
}

func renderConfig(w io.Writer, cfg *config.Config, path string) {
	source := path
	if source == "" {
		source = "(defaults)"
	}
	fmt.Fprintln(w, TitleStyle.Render("Configuration"))
	fmt.Fprintln(w, keyStyle.Render("file")+source)
	fmt.Fprintln(w, keyStyle.Render("jobs")+strconv.Itoa(cfg.Jobs))
	fmt.Fprintln(w, keyStyle.Render("max_clone_depth")+strconv.Itoa(cfg.MaxCloneDepth))
	fmt.Fprintln(w, keyStyle.Render("history_file")+cfg.HistoryFile)
	fmt.Fprintln(w, keyStyle.Render("verbose")+strconv.FormatBool(cfg.Verbose))
	fmt.Fprintln(w, keyStyle.Render("module_name")+cfg.ModuleName)
}
