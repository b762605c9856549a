// mazesh is an interactive shell for building and solving 5x5x5 mazes.
//
// Usage:
//
//	mazesh [maze-file]
//
// If a maze file is given it is imported before the prompt starts.
// Type 'help' at the prompt for the list of commands.
package main

import (
	"fmt"
	"os"

	"github.com/calvinalkan/pathfinder/internal/shell"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	s := shell.New()

	if len(os.Args) > 1 {
		if err := s.Load(os.Args[1]); err != nil {
			return err
		}
	}

	return s.Run(os.Stdout)
}
