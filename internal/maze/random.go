package maze

import (
	"math/rand"
	"time"
)

// NewRand returns a generator seeded with seed. A zero seed picks a
// time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// RandomGrid fills a grid with independent coin flips and then opens the
// entrance and exit. The result may or may not be solvable.
func RandomGrid(rng *rand.Rand) Grid {
	var grid Grid

	for i := range grid.cells {
		if rng.Intn(2) == 0 {
			grid.cells[i] = Blocked
		}
	}

	grid.Set(Entrance, Open)
	grid.Set(Exit, Open)

	return grid
}
