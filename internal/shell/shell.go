// Package shell implements mazesh, an interactive prompt over an in-memory
// maze.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/pathfinder/internal/mazefile"
	"github.com/calvinalkan/pathfinder/internal/pathfinder"
)

var commandNames = []string{"show", "random", "import", "save", "solve", "wipe", "help", "exit", "quit"}

// Shell dispatches prompt lines against one maze.
type Shell struct {
	p     *pathfinder.Pathfinder
	liner *liner.State
}

// New returns a Shell with no maze loaded.
func New() *Shell {
	return &Shell{p: pathfinder.New()}
}

// Load imports the maze file at path.
func (s *Shell) Load(path string) error {
	return s.p.ImportFile(path)
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".mazesh_history")
}

// Run reads commands from the terminal until exit or EOF.
func (s *Shell) Run(out io.Writer) error {
	s.liner = liner.NewLiner()
	defer s.liner.Close()

	s.liner.SetCtrlCAborts(true)
	s.liner.SetCompleter(complete)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = s.liner.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Fprintln(out, "mazesh - 5x5x5 maze shell")
	fmt.Fprintln(out, "Type 'help' for available commands.")
	fmt.Fprintln(out)

	for {
		line, err := s.liner.Prompt("maze> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		s.liner.AppendHistory(line)

		if s.Exec(line, out) {
			break
		}
	}

	s.saveHistory()

	return nil
}

func (s *Shell) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = s.liner.WriteHistory(f)
			_ = f.Close()
		}
	}
}

func complete(line string) []string {
	var out []string

	for _, name := range commandNames {
		if strings.HasPrefix(name, strings.ToLower(line)) {
			out = append(out, name)
		}
	}

	return out
}

// Exec runs one command line and writes its output to out. It returns true
// when the shell should exit.
func (s *Shell) Exec(line string, out io.Writer) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "exit", "quit", "q":
		fmt.Fprintln(out, "Bye!")

		return true

	case "help", "?":
		printHelp(out)

	case "show":
		fmt.Fprintln(out, s.p.ToText())

	case "random":
		s.cmdRandom(out, args)

	case "import":
		s.cmdImport(out, args)

	case "save":
		s.cmdSave(out, args)

	case "solve":
		s.cmdSolve(out)

	case "wipe":
		s.p.Wipe()
		fmt.Fprintln(out, "OK")

	default:
		fmt.Fprintf(out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	return false
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `Commands:
  show              Print the current maze
  random [seed]     Generate a random maze
  import <file>     Load a maze file (current maze kept on error)
  save <file>       Write the current maze to a file
  solve             Print a path from (0, 0, 0) to (4, 4, 4)
  wipe              Open every cell
  help              Show this help
  exit / quit / q   Exit`)
}

func (s *Shell) cmdRandom(out io.Writer, args []string) {
	var seed int64

	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(out, "Error: invalid seed %q\n", args[0])

			return
		}

		seed = n
	}

	s.p.Randomize(seed)
	fmt.Fprintln(out, s.p.ToText())
}

func (s *Shell) cmdImport(out io.Writer, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(out, "Usage: import <file>")

		return
	}

	if err := s.p.ImportFile(args[0]); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)

		return
	}

	fmt.Fprintln(out, "OK")
}

func (s *Shell) cmdSave(out io.Writer, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(out, "Usage: save <file>")

		return
	}

	if err := mazefile.Save(args[0], s.p.ToText()); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)

		return
	}

	fmt.Fprintln(out, "OK")
}

func (s *Shell) cmdSolve(out io.Writer) {
	path := s.p.Solve()
	if len(path) == 0 {
		fmt.Fprintln(out, "no path")

		return
	}

	for _, step := range path {
		fmt.Fprintln(out, step)
	}

	fmt.Fprintf(out, "(%d steps)\n", len(path))
}
