package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/pathfinder/internal/config"
	"github.com/calvinalkan/pathfinder/internal/mazefile"
	"github.com/calvinalkan/pathfinder/internal/pathfinder"
)

// WipeCmd returns the wipe command.
func WipeCmd(cfg *config.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("wipe", flag.ContinueOnError),
		Usage: "wipe",
		Short: "Open every cell of the stored maze",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execWipe(io, cfg)
		},
	}
}

func execWipe(io *IO, cfg *config.Config) error {
	p := pathfinder.New()

	// A corrupt maze file is overwritten as well.
	_, _ = mazefile.Load(p, cfg.MazeFileAbs)

	p.Wipe()

	if err := mazefile.Save(cfg.MazeFileAbs, p.ToText()); err != nil {
		return err
	}

	io.Println("wiped", cfg.MazeFileAbs)

	return nil
}
