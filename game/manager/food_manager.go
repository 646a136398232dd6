package manager

import (
	"snake-grid/game/types"

	"golang.org/x/exp/rand"
)

// Rand is the uniform integer source used for coin placement.
type Rand interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewRand returns a Rand seeded with seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// FoodManager keeps the single coin on the board.
type FoodManager struct {
	grid     types.Grid
	position int
	rng      Rand
}

// NewFoodManager places the first coin uniformly over the whole grid.
func NewFoodManager(grid types.Grid, rng Rand) *FoodManager {
	return &FoodManager{
		grid:     grid,
		position: rng.Intn(grid.Cells()),
		rng:      rng,
	}
}

// Spawn moves the coin to a random cell outside excluded. When every cell is
// excluded the coin falls back to cell 0.
func (fm *FoodManager) Spawn(excluded map[int]struct{}) int {
	free := make([]int, 0, fm.grid.Cells())
	for i := 0; i < fm.grid.Cells(); i++ {
		if _, taken := excluded[i]; !taken {
			free = append(free, i)
		}
	}

	if len(free) == 0 {
		fm.position = 0
	} else {
		fm.position = free[fm.rng.Intn(len(free))]
	}
	return fm.position
}

// Position returns the cell holding the coin.
func (fm *FoodManager) Position() int {
	return fm.position
}

func (fm *FoodManager) Grid() types.Grid {
	return fm.grid
}
