package maze

import (
	"fmt"
	"io"
	"math/rand"
	"os"
)

// Store owns the canonical maze.
//
// A new Store is empty: it has no maze and reports an all-open grid. It
// becomes loaded after a successful [Store.Randomize] or [Store.Import], and
// only a later successful call replaces the maze.
type Store struct {
	grid *Grid // nil while empty
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Loaded reports whether a maze was generated or imported.
func (s *Store) Loaded() bool {
	return s.grid != nil
}

// Wipe opens every cell of the current maze. It does not change whether the
// store is loaded.
func (s *Store) Wipe() {
	if s.grid != nil {
		s.grid.Fill(Open)
	}
}

// Text returns the maze in the text format. An empty store yields all 1s.
func (s *Store) Text() string {
	grid := s.Snapshot()

	return grid.String()
}

// Snapshot returns a copy of the current grid. Changes to the copy are not
// visible to the store.
func (s *Store) Snapshot() Grid {
	if s.grid == nil {
		return Grid{}
	}

	return s.grid.Copy()
}

// Randomize replaces the maze with a random one generated from seed.
// See [NewRand] for the meaning of a zero seed.
func (s *Store) Randomize(seed int64) {
	s.RandomizeWith(NewRand(seed))
}

// RandomizeWith replaces the maze with a random one drawn from rng.
func (s *Store) RandomizeWith(rng *rand.Rand) {
	grid := RandomGrid(rng)
	s.grid = &grid
}

// Import replaces the maze with one read from r. On error the store is left
// unchanged.
func (s *Store) Import(r io.Reader) error {
	grid, err := ParseGrid(r)
	if err != nil {
		return err
	}

	s.grid = &grid

	return nil
}

// ImportFile imports the maze stored at path. A missing or unreadable file
// yields [ErrSourceUnavailable].
func (s *Store) ImportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return s.Import(f)
}
