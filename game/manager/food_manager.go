package manager

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gridsnake/game/types"
)

// FoodManager owns the single piece of food on the board
type FoodManager struct {
	grid         types.Grid
	food         types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// Place drops the food on a random free cell and returns it. Cells in
// excluded are never picked.
//
// Sampling is unbounded; the only way it could spin forever is a grid with
// no free cell at all, which is checked up front. In that case the food
// stays where it was.
func (fm *FoodManager) Place(excluded []types.Point) types.Point {
	if fm.collisionMgr.IsFull(excluded) {
		log.Warn().Int("cells", fm.grid.Cells()).Msg("grid is full, food not moved")
		return fm.food
	}

	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, excluded) {
			fm.food = food
			return food
		}
	}
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}
