package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/pathfinder/internal/config"
	"github.com/calvinalkan/pathfinder/internal/maze"
)

// ShowCmd returns the show command.
func ShowCmd(cfg *config.Config) *Command {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	stats := fs.Bool("stats", false, "Append the number of open cells")

	return &Command{
		Flags: fs,
		Usage: "show [--stats]",
		Short: "Print the stored maze",
		Long:  "Print the stored maze as five 5x5 layers of 0 (blocked) and 1 (open).\nPrints an all-open maze if none was generated or imported.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execShow(io, cfg, *stats)
		},
	}
}

func execShow(io *IO, cfg *config.Config, stats bool) error {
	p, err := openMaze(io, cfg)
	if err != nil {
		return err
	}

	text := p.ToText()
	io.Println(text)

	if stats {
		g := p.Grid()

		io.Println()
		io.Printf("open=%d blocked=%d\n", g.OpenCount(), maze.CellCount-g.OpenCount())
	}

	return nil
}
