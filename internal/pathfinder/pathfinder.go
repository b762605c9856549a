// Package pathfinder exposes the maze operations used by the command-line
// and interactive front ends.
package pathfinder

import (
	"io"

	"github.com/calvinalkan/pathfinder/internal/maze"
	"github.com/calvinalkan/pathfinder/internal/solver"
)

// Pathfinder holds one maze and answers text, generation, import and solve
// requests against it.
type Pathfinder struct {
	store *maze.Store
}

// New returns a Pathfinder with no maze loaded.
func New() *Pathfinder {
	return &Pathfinder{store: maze.NewStore()}
}

// ToText returns the current maze in the text format, or an all-open maze
// if none was generated or imported.
func (p *Pathfinder) ToText() string {
	return p.store.Text()
}

// Randomize replaces the maze with a random one. A zero seed is time-based.
func (p *Pathfinder) Randomize(seed int64) {
	p.store.Randomize(seed)
}

// ImportFrom reads a maze from r. The current maze is kept on error.
func (p *Pathfinder) ImportFrom(r io.Reader) error {
	return p.store.Import(r)
}

// ImportFile reads a maze from the file at path. The current maze is kept
// on error.
func (p *Pathfinder) ImportFile(path string) error {
	return p.store.ImportFile(path)
}

// Solve returns the route from entrance to exit as "(z, y, x)" strings.
// The result is empty when the maze has no solution.
func (p *Pathfinder) Solve() []string {
	return solver.Format(p.SolveCoords())
}

// SolveCoords is [Pathfinder.Solve] without formatting.
func (p *Pathfinder) SolveCoords() []maze.Coord {
	return solver.Solve(p.store.Snapshot())
}

// Verify checks a route against the current maze.
func (p *Pathfinder) Verify(path []maze.Coord) error {
	return solver.Valid(p.store.Snapshot(), path)
}

// Grid returns a copy of the current maze.
func (p *Pathfinder) Grid() maze.Grid {
	return p.store.Snapshot()
}

// Wipe opens every cell of the current maze.
func (p *Pathfinder) Wipe() {
	p.store.Wipe()
}

// Loaded reports whether a maze was generated or imported.
func (p *Pathfinder) Loaded() bool {
	return p.store.Loaded()
}
