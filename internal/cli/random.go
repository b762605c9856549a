package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/pathfinder/internal/config"
	"github.com/calvinalkan/pathfinder/internal/mazefile"
	"github.com/calvinalkan/pathfinder/internal/pathfinder"
)

// RandomCmd returns the random command.
func RandomCmd(cfg *config.Config) *Command {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	seed := fs.Int64("seed", 0, "Random seed (0 = config seed, else time-based)")

	return &Command{
		Flags: fs,
		Usage: "random [--seed N]",
		Short: "Generate and store a random maze",
		Long: "Fill every cell with a coin flip, open the entrance and exit, and save\n" +
			"the result as the stored maze. The maze may or may not be solvable.",
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			return execRandom(ctx, io, cfg, *seed)
		},
	}
}

func execRandom(ctx context.Context, io *IO, cfg *config.Config, seed int64) error {
	if seed == 0 {
		seed = cfg.Seed
	}

	p := pathfinder.New()
	p.Randomize(seed)

	if err := checkCanceled(ctx); err != nil {
		return err
	}

	if err := mazefile.Save(cfg.MazeFileAbs, p.ToText()); err != nil {
		return err
	}

	io.Println(p.ToText())

	return nil
}
