package entity

import (
	"gridsnake/game/types"
)

// StepResult is the outcome of a single Step
type StepResult int

const (
	Moved StepResult = iota
	AteFood
	Collided
)

func (r StepResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case AteFood:
		return "ate_food"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

// Self-collision scopes. ExemptNone checks the whole body, ExemptNeck skips
// the head and the segment right behind it.
const (
	ExemptNone = 0
	ExemptNeck = 2
)

// Snake is the player. Body is ordered head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction

	pending   types.Direction // applied on the next Step, None when empty
	grid      types.Grid
	exemption int // leading segments skipped by the self-collision check
}

// NewSnake spawns a length 1 snake in the middle of the grid, heading right.
func NewSnake(grid types.Grid, exemption int) *Snake {
	s := &Snake{
		grid:      grid,
		exemption: exemption,
	}
	s.Reset()
	return s
}

// Reset puts the snake back to its spawn state
func (s *Snake) Reset() {
	s.Body = []types.Point{s.grid.Center()}
	s.Direction = types.Right
	s.pending = types.None
}

// QueueDirection records dir for the next step. Turning straight back is
// ignored and reported as false.
func (s *Snake) QueueDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.pending = dir
	return true
}

// Pending returns the queued direction, or None
func (s *Snake) Pending() types.Direction {
	return s.pending
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Step advances the snake by one cell.
func (s *Snake) Step(food types.Point) StepResult {
	if s.pending != types.None {
		s.Direction = s.pending
		s.pending = types.None
	}

	newHead := s.grid.Wrap(s.GetHead().Add(s.Direction.ToPoint()))

	// Grow: insert the head and keep the tail
	if newHead == food {
		s.Body = s.push(newHead)
		return AteFood
	}

	// Check against the body as it is before the move
	if s.hitsSelf(newHead) {
		s.Reset()
		return Collided
	}

	s.Body = s.push(newHead)
	s.Body = s.Body[:len(s.Body)-1]
	return Moved
}

func (s *Snake) hitsSelf(p types.Point) bool {
	for i := s.exemption; i < len(s.Body); i++ {
		if s.Body[i] == p {
			return true
		}
	}
	return false
}

func (s *Snake) push(head types.Point) []types.Point {
	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, head)
	return append(body, s.Body...)
}
