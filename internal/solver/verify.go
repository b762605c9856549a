package solver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/calvinalkan/pathfinder/internal/maze"
)

// Path verification errors.
var (
	ErrPathEmpty       = errors.New("path is empty")
	ErrPathStart       = errors.New("path must start at the entrance")
	ErrPathEnd         = errors.New("path must end at the exit")
	ErrPathRepeat      = errors.New("path visits a cell twice")
	ErrPathGap         = errors.New("consecutive cells are not adjacent")
	ErrPathBlocked     = errors.New("path crosses a blocked cell")
	ErrPathOutOfBounds = errors.New("path leaves the maze")
	ErrCoordSyntax     = errors.New("coordinate must look like (z, y, x)")
)

// Valid checks that path is a simple route through the open cells of grid
// from entrance to exit.
func Valid(grid maze.Grid, path []maze.Coord) error {
	if len(path) == 0 {
		return ErrPathEmpty
	}

	if path[0] != maze.Entrance {
		return fmt.Errorf("%w: got %s", ErrPathStart, path[0])
	}

	if last := path[len(path)-1]; last != maze.Exit {
		return fmt.Errorf("%w: got %s", ErrPathEnd, last)
	}

	seen := make(map[maze.Coord]bool, len(path))

	for i, c := range path {
		if !c.InBounds() {
			return fmt.Errorf("%w: step %d: %s", ErrPathOutOfBounds, i, c)
		}

		if grid.At(c) == maze.Blocked {
			return fmt.Errorf("%w: step %d: %s", ErrPathBlocked, i, c)
		}

		if seen[c] {
			return fmt.Errorf("%w: step %d: %s", ErrPathRepeat, i, c)
		}

		seen[c] = true

		if i > 0 && !maze.Adjacent(path[i-1], c) {
			return fmt.Errorf("%w: step %d: %s -> %s", ErrPathGap, i, path[i-1], c)
		}
	}

	return nil
}

// ParseCoord is the inverse of [maze.Coord.String].
func ParseCoord(s string) (maze.Coord, error) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}

	parts := strings.Split(inner, ",")
	if !ok || len(parts) != 3 {
		return maze.Coord{}, fmt.Errorf("%w: %q", ErrCoordSyntax, s)
	}

	var zyx [3]int

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return maze.Coord{}, fmt.Errorf("%w: %q", ErrCoordSyntax, s)
		}

		zyx[i] = n
	}

	return maze.Coord{X: zyx[2], Y: zyx[1], Z: zyx[0]}, nil
}
