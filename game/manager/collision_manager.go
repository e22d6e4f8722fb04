package manager

import (
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// ValidateSpawnPosition checks if a position is free for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied []types.Point) bool {
	if !cm.grid.Contains(pos) {
		return false
	}

	for _, part := range occupied {
		if pos == part {
			return false
		}
	}

	return true
}

// IsFull reports whether nothing is left to spawn on
func (cm *CollisionManager) IsFull(occupied []types.Point) bool {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if cm.grid.Contains(p) {
			taken[p] = struct{}{}
		}
	}
	return len(taken) >= cm.grid.Cells()
}
