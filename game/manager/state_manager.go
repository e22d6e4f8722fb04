package manager

import (
	"time"

	"github.com/google/uuid"

	"gridsnake/game/entity"
)

// SessionStats is a point-in-time copy of the session counters.
// Nothing here outlives the process.
type SessionStats struct {
	SessionID  string
	StartTime  time.Time
	Ticks      int
	Score      int
	BestScore  int
	FoodEaten  int
	Collisions int
}

type StateManager struct {
	stats SessionStats
}

func NewStateManager() *StateManager {
	return &StateManager{
		stats: SessionStats{
			SessionID: uuid.New().String(),
			StartTime: time.Now(),
		},
	}
}

// Record folds one step into the counters. length is the body length after
// the step.
func (sm *StateManager) Record(res entity.StepResult, length int) {
	sm.stats.Ticks++

	switch res {
	case entity.AteFood:
		sm.stats.FoodEaten++
	case entity.Collided:
		sm.stats.Collisions++
	}

	sm.stats.Score = length - 1
	if sm.stats.Score > sm.stats.BestScore {
		sm.stats.BestScore = sm.stats.Score
	}
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}
