package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/pathfinder/internal/config"
)

// SolveCmd returns the solve command.
func SolveCmd(cfg *config.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("solve", flag.ContinueOnError),
		Usage: "solve",
		Short: "Print a path from entrance to exit",
		Long: "Print one \"(z, y, x)\" coordinate per line, from the entrance (0, 0, 0)\n" +
			"to the exit (4, 4, 4). Prints \"no path\" to stderr if the maze has no solution.",
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			return execSolve(ctx, io, cfg)
		},
	}
}

func execSolve(ctx context.Context, io *IO, cfg *config.Config) error {
	p, err := openMaze(io, cfg)
	if err != nil {
		return err
	}

	if err := checkCanceled(ctx); err != nil {
		return err
	}

	path := p.Solve()
	if len(path) == 0 {
		io.ErrPrintln("no path")

		return nil
	}

	for _, step := range path {
		io.Println(step)
	}

	return nil
}
