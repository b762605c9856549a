// Package cli implements the pathfinder command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/pathfinder/internal/config"
)

// Run is the main entry point. Returns exit code.
//
// sigCh may be nil. A signal on it cancels the context passed to the
// running command.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	o := NewIO(out, errOut)

	globals := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	globals.SetOutput(&strings.Builder{})
	globals.SetInterspersed(false)

	workDir := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified config `file`")
	mazeFile := globals.String("maze", "", "Override the maze `file`")
	help := globals.BoolP("help", "h", false, "Show help")

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	if err := globals.Parse(rest); err != nil {
		o.ErrPrintln("error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	if globals.Changed("maze") && *mazeFile == "" {
		o.ErrPrintln("error:", config.ErrMazeFileEmpty)
		printUsage(errOut, globals, nil)

		return 1
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride:  *workDir,
		ConfigPath:       *configPath,
		MazeFileOverride: *mazeFile,
		Env:              env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	commands := allCommands(&cfg, stdin)

	if *help || globals.NArg() == 0 {
		printUsage(out, globals, commands)

		return 0
	}

	name := globals.Arg(0)

	cmd, ok := findCommand(commands, name)
	if !ok {
		o.ErrPrintln("error: unknown command:", name)
		printUsage(errOut, globals, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	return cmd.Run(ctx, o, globals.Args()[1:])
}

func allCommands(cfg *config.Config, stdin io.Reader) []*Command {
	return []*Command{
		ShowCmd(cfg),
		RandomCmd(cfg),
		ImportCmd(cfg),
		SolveCmd(cfg),
		VerifyCmd(cfg, stdin),
		WipeCmd(cfg),
		PrintConfigCmd(cfg),
	}
}

func findCommand(commands []*Command, name string) (*Command, bool) {
	for _, c := range commands {
		if c.Name() == name {
			return c, true
		}
	}

	return nil, false
}

// errCanceled reports an interrupted command.
var errCanceled = errors.New("interrupted")

func checkCanceled(ctx context.Context) error {
	if ctx.Err() != nil {
		return errCanceled
	}

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	fprintln(w, `pathfinder - 5x5x5 maze generator and solver

Usage: pathfinder [global flags] <command> [args]

Global flags:`)

	var buf strings.Builder
	globals.SetOutput(&buf)
	globals.PrintDefaults()
	globals.SetOutput(&strings.Builder{})
	fprintln(w, strings.TrimRight(buf.String(), "\n"))

	if len(commands) == 0 {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range commands {
		fprintln(w, c.HelpLine())
	}
}
