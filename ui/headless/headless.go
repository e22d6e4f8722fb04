// Package headless runs sessions without a screen: input is a seeded random
// player and frames are only counted.
package headless

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// turnChance is the probability of pressing a key, and of pressing another
// one after that within the same tick
const (
	turnChance        = 0.2
	maxPressesPerTick = 3
)

var directions = [...]types.Direction{types.Up, types.Right, types.Down, types.Left}

// Player presses random direction keys and quits after a fixed number of
// ticks.
type Player struct {
	rng   *rand.Rand
	ticks int
	polls int
}

func NewPlayer(seed uint64, ticks int) *Player {
	return &Player{
		rng:   rand.New(rand.NewSource(seed)),
		ticks: ticks,
	}
}

// Poll presses a key now and then, sometimes several in the same tick
func (p *Player) Poll() ([]types.Direction, bool) {
	if p.polls >= p.ticks {
		return nil, true
	}
	p.polls++

	var dirs []types.Direction
	for len(dirs) < maxPressesPerTick && p.rng.Float64() < turnChance {
		dirs = append(dirs, directions[p.rng.Intn(len(directions))])
	}
	return dirs, false
}

// Recorder is a renderer that keeps the last frame and tallies results
type Recorder struct {
	Frames  int
	Last    game.Frame
	Results map[entity.StepResult]int
	Longest int
}

func NewRecorder() *Recorder {
	return &Recorder{
		Results: make(map[entity.StepResult]int),
	}
}

func (r *Recorder) Render(f game.Frame) error {
	r.Frames++
	r.Last = f
	r.Results[f.Result]++
	if len(f.Body) > r.Longest {
		r.Longest = len(f.Body)
	}
	return nil
}

// Report writes a short summary of the session
func (r *Recorder) Report(w io.Writer, elapsed time.Duration) {
	stats := r.Last.Stats
	fmt.Fprintf(w, "session %s\n", stats.SessionID)
	fmt.Fprintf(w, "  ticks:      %d (%s)\n", stats.Ticks, elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  moved:      %d\n", r.Results[entity.Moved])
	fmt.Fprintf(w, "  food eaten: %d\n", r.Results[entity.AteFood])
	fmt.Fprintf(w, "  collisions: %d\n", r.Results[entity.Collided])
	fmt.Fprintf(w, "  best score: %d\n", stats.BestScore)
	fmt.Fprintf(w, "  longest:    %d\n", r.Longest)
}
