package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

const (
	promptMain = "lstd> "
	promptCont = "...   "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lua session",
	Long: `Repl reads Lua chunks line by line and prints the values of expressions.
The module is available as the global "lstd". Type :quit or press Ctrl-D to exit.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func runREPL(cmd *cobra.Command, _ []string) error {
	L := newRunner(cmd).NewState()
	defer L.Close()
	L.SetContext(cmd.Context())
	if err := L.DoString(fmt.Sprintf("lstd = require(%q)", appConfig.ModuleName)); err != nil {
		return fmt.Errorf("failed to load module: %w", err)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if path := appConfig.HistoryFile; path != "" {
		if f, err := os.Open(path); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(path)
			if err != nil {
				logger.Debug("history not saved", "path", path, "err", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("lstd")+SubtitleStyle.Render(" "+Version+", :quit to exit"))
	return repl(ln, L, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// repl evaluates chunks from in until :quit or end of input.
func repl(in lineReader, L *lua.LState, out, errOut io.Writer) error {
	for {
		src, err := readChunk(in)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if trimmed == ":quit" {
				return nil
			}
			fmt.Fprintln(errOut, "unknown command. Type :quit to exit.")
			continue
		}

		in.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if err := eval(L, src, out); err != nil {
			fmt.Fprintln(errOut, ErrorStyle.Render(err.Error()))
		}
	}
}

// readChunk prompts until the collected lines form a chunk that is not cut short.
func readChunk(in lineReader) (string, error) {
	var b strings.Builder
	prompt := promptMain
	for {
		line, err := in.Prompt(prompt)
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !incomplete(b.String()) {
			return b.String(), nil
		}
		prompt = promptCont
	}
}

// incomplete reports whether src fails to parse only because it ends too early.
func incomplete(src string) bool {
	if _, err := parse.Parse(strings.NewReader("return "+src), "repl"); err == nil {
		return false
	}
	_, err := parse.Parse(strings.NewReader(src), "repl")
	return err != nil && strings.Contains(err.Error(), "EOF")
}

// eval runs src, first as an expression so its values are printed, then as a statement.
func eval(L *lua.LState, src string, out io.Writer) error {
	fn, err := L.LoadString("return " + src)
	if err != nil {
		if fn, err = L.LoadString(src); err != nil {
			return err
		}
	}
	top := L.GetTop()
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return err
	}
	n := L.GetTop() - top
	if n == 0 {
		return nil
	}
	parts := make([]string, 0, n)
	for i := top + 1; i <= top+n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	L.Pop(n)
	fmt.Fprintln(out, strings.Join(parts, "\t"))
	return nil
}
