// Package maze models a fixed 5x5x5 maze of open and blocked cells.
//
// The main types are:
//   - [Grid]: the 125 cells, indexed by [Coord]
//   - [Store]: the canonical maze with its empty/loaded lifecycle
//
// Cells are addressed as (x, y, z) where increasing x moves east, increasing
// y moves south and increasing z moves one layer deeper. The entrance is
// (0, 0, 0) and the exit is (4, 4, 4).
package maze

import (
	"fmt"
	"strings"
)

// Grid dimensions.
const (
	SizeX = 5
	SizeY = 5
	SizeZ = 5

	CellCount = SizeX * SizeY * SizeZ
	layerSize = SizeX * SizeY
)

// Cell is the state of one grid position.
type Cell uint8

// Cell states. Visited and DeadEnd are search markings and are never
// written to the text format.
const (
	Open Cell = iota
	Blocked
	Visited
	DeadEnd
)

func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	case Visited:
		return "visited"
	case DeadEnd:
		return "dead-end"
	}

	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Coord identifies a cell.
type Coord struct {
	X, Y, Z int
}

// Entrance and Exit are the fixed endpoints of every maze.
var (
	Entrance = Coord{0, 0, 0}
	Exit     = Coord{SizeX - 1, SizeY - 1, SizeZ - 1}
)

// InBounds reports whether c addresses a cell of the grid.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < SizeX &&
		c.Y >= 0 && c.Y < SizeY &&
		c.Z >= 0 && c.Z < SizeZ
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// String formats c as "(z, y, x)". The reversed axis order is the external
// path format.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.Z, c.Y, c.X)
}

// Adjacent reports whether a and b differ by exactly 1 along exactly one axis.
func Adjacent(a, b Coord) bool {
	return abs(a.X-b.X)+abs(a.Y-b.Y)+abs(a.Z-b.Z) == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Grid holds every cell of a maze. The zero value is an all-open grid.
//
// Grid is an array, so assignment copies it.
type Grid struct {
	cells [CellCount]Cell
}

func index(c Coord) int {
	if !c.InBounds() {
		panic(fmt.Sprintf("maze: coordinate out of range: x=%d y=%d z=%d", c.X, c.Y, c.Z))
	}

	return c.Z*layerSize + c.Y*SizeX + c.X
}

// At returns the state of the cell at c. Panics if c is out of range.
func (g *Grid) At(c Coord) Cell {
	return g.cells[index(c)]
}

// Set changes the state of the cell at c. Panics if c is out of range.
func (g *Grid) Set(c Coord, state Cell) {
	g.cells[index(c)] = state
}

// Copy returns an independent copy of g.
func (g *Grid) Copy() Grid {
	return *g
}

// Fill sets every cell to state.
func (g *Grid) Fill(state Cell) {
	for i := range g.cells {
		g.cells[i] = state
	}
}

// OpenCount returns the number of cells that are not blocked.
func (g *Grid) OpenCount() int {
	n := 0

	for _, c := range g.cells {
		if c != Blocked {
			n++
		}
	}

	return n
}

// String renders g in the text maze format. Any cell that is not blocked
// is written as 1.
func (g *Grid) String() string {
	var sb strings.Builder

	sb.Grow(CellCount*2 + SizeZ)

	for z := range SizeZ {
		if z > 0 {
			sb.WriteString("\n\n")
		}

		for y := range SizeY {
			if y > 0 {
				sb.WriteByte('\n')
			}

			for x := range SizeX {
				if x > 0 {
					sb.WriteByte(' ')
				}

				if g.At(Coord{x, y, z}) == Blocked {
					sb.WriteByte('0')
				} else {
					sb.WriteByte('1')
				}
			}
		}
	}

	return sb.String()
}
