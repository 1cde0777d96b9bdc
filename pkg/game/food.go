package game

import (
	"math/rand"

	"github.com/nonono109/snaker/pkg/config"
)

// FoodPlacer picks a free cell for the next food
type FoodPlacer struct {
	grid       Grid
	rng        *rand.Rand
	maxSamples int
}

// NewFoodPlacer creates a placer drawing from rng
func NewFoodPlacer(grid Grid, rng *rand.Rand) *FoodPlacer {
	return &FoodPlacer{
		grid:       grid,
		rng:        rng,
		maxSamples: config.FoodSampleLimit,
	}
}

// Place returns a uniformly random cell not covered by snake.
// It returns false when the snake fills the whole grid.
func (f *FoodPlacer) Place(snake []Point) (Point, bool) {
	// Random sampling is fast while the board is mostly empty
	for attempts := 0; attempts < f.maxSamples; attempts++ {
		pos := Point{
			X: f.rng.Intn(f.grid.Size),
			Y: f.rng.Intn(f.grid.Size),
		}
		if !occupies(snake, pos) {
			return pos, true
		}
	}

	// Crowded board: pick among the remaining free cells
	taken := make(map[Point]struct{}, len(snake))
	for _, s := range snake {
		taken[s] = struct{}{}
	}
	free := make([]Point, 0, f.grid.Cells()-len(taken))
	for y := 0; y < f.grid.Size; y++ {
		for x := 0; x < f.grid.Size; x++ {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[f.rng.Intn(len(free))], true
}
