package cli

import (
	"github.com/calvinalkan/pathfinder/internal/config"
	"github.com/calvinalkan/pathfinder/internal/mazefile"
	"github.com/calvinalkan/pathfinder/internal/pathfinder"
)

// openMaze loads the configured maze file. A missing file is not an error:
// the returned Pathfinder is empty and a warning is queued on o.
func openMaze(o *IO, cfg *config.Config) (*pathfinder.Pathfinder, error) {
	p := pathfinder.New()

	loaded, err := mazefile.Load(p, cfg.MazeFileAbs)
	if err != nil {
		return nil, err
	}

	if !loaded {
		o.Warn("no maze at "+cfg.MazeFileAbs, "run 'pathfinder random' or 'pathfinder import <file>' first")
	}

	return p, nil
}
