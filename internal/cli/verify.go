package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/pathfinder/internal/config"
	"github.com/calvinalkan/pathfinder/internal/maze"
	"github.com/calvinalkan/pathfinder/internal/solver"
)

// VerifyCmd returns the verify command. A file argument of "-" reads stdin.
func VerifyCmd(cfg *config.Config, stdin io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("verify", flag.ContinueOnError),
		Usage: "verify <file|->",
		Short: "Check a path against the stored maze",
		Long: "Read one \"(z, y, x)\" coordinate per line and check that the path\n" +
			"runs through open cells from entrance to exit without gaps or repeats.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execVerify(o, cfg, stdin, args)
		},
	}
}

func execVerify(o *IO, cfg *config.Config, stdin io.Reader, args []string) error {
	if len(args) == 0 {
		return errFileRequired
	}

	var src io.Reader

	if args[0] == "-" {
		if stdin == nil {
			return fmt.Errorf("%w: stdin", maze.ErrSourceUnavailable)
		}

		src = stdin
	} else {
		name := args[0]
		if !filepath.IsAbs(name) {
			name = filepath.Join(cfg.EffectiveCwd, name)
		}

		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("%w: %w", maze.ErrSourceUnavailable, err)
		}
		defer f.Close()

		src = f
	}

	path, err := readPath(src)
	if err != nil {
		return err
	}

	p, err := openMaze(o, cfg)
	if err != nil {
		return err
	}

	if err := p.Verify(path); err != nil {
		return err
	}

	o.Printf("ok: %d steps\n", len(path))

	return nil
}

func readPath(r io.Reader) ([]maze.Coord, error) {
	var path []maze.Coord

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c, err := solver.ParseCoord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		path = append(path, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", maze.ErrSourceUnavailable, err)
	}

	return path, nil
}
