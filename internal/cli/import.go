package cli

import (
	"context"
	"errors"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/pathfinder/internal/config"
	"github.com/calvinalkan/pathfinder/internal/mazefile"
	"github.com/calvinalkan/pathfinder/internal/pathfinder"
)

var errFileRequired = errors.New("file argument is required")

// ImportCmd returns the import command.
func ImportCmd(cfg *config.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("import", flag.ContinueOnError),
		Usage: "import <file>",
		Short: "Validate a maze file and store it",
		Long: "Read a maze in the text format from <file>. If it is valid it replaces\n" +
			"the stored maze; otherwise the stored maze is left unchanged.",
		Exec: func(ctx context.Context, io *IO, args []string) error {
			return execImport(ctx, io, cfg, args)
		},
	}
}

func execImport(ctx context.Context, io *IO, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return errFileRequired
	}

	src := args[0]
	if !filepath.IsAbs(src) {
		src = filepath.Join(cfg.EffectiveCwd, src)
	}

	p := pathfinder.New()

	if err := p.ImportFile(src); err != nil {
		return err
	}

	if err := checkCanceled(ctx); err != nil {
		return err
	}

	if err := mazefile.Save(cfg.MazeFileAbs, p.ToText()); err != nil {
		return err
	}

	io.Println("imported", args[0])

	return nil
}
