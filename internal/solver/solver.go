// Package solver finds a route from the entrance to the exit of a maze.
//
// The search is a depth-first walk with backtracking. Every cell it enters
// is marked visited, and a cell whose neighbours all fail is marked as a
// dead end, so no cell is entered twice and the walk ends after at most one
// visit per cell. The result is not necessarily the shortest path, but it is
// the same path every time for a given maze.
package solver

import (
	"slices"

	"github.com/calvinalkan/pathfinder/internal/maze"
)

// neighbours lists the exploration order: -X, +X, -Y, +Y, -Z, +Z.
var neighbours = [...]maze.Coord{
	{X: -1}, {X: 1},
	{Y: -1}, {Y: 1},
	{Z: -1}, {Z: 1},
}

// Solve returns a path from [maze.Entrance] to [maze.Exit], or nil if none
// exists. grid is not modified.
func Solve(grid maze.Grid) []maze.Coord {
	s := search{grid: grid.Copy()}

	if !s.walk(maze.Entrance) {
		return nil
	}

	slices.Reverse(s.path)

	return s.path
}

// search holds the working copy and the path collected while unwinding,
// exit first.
type search struct {
	grid maze.Grid
	path []maze.Coord
}

func (s *search) eligible(c maze.Coord) bool {
	return c.InBounds() && s.grid.At(c) == maze.Open
}

func (s *search) walk(c maze.Coord) bool {
	if !s.eligible(c) {
		return false
	}

	s.grid.Set(c, maze.Visited)

	if c == maze.Exit {
		s.path = append(s.path, c)
		return true
	}

	for _, d := range neighbours {
		if s.walk(c.Add(d)) {
			s.path = append(s.path, c)
			return true
		}
	}

	s.grid.Set(c, maze.DeadEnd)

	return false
}

// Format renders path in the external "(z, y, x)" form.
func Format(path []maze.Coord) []string {
	out := make([]string, len(path))

	for i, c := range path {
		out[i] = c.String()
	}

	return out
}
