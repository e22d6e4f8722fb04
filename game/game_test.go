package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func newTestGame(seed uint64) *Game {
	return NewGame(Options{
		Grid:               types.Grid{Width: 32, Height: 24},
		CollisionExemption: entity.ExemptNone,
		Seed:               seed,
	})
}

// puts the snake head one cell left of the food, heading right
func lineUpWithFood(g *Game) types.Point {
	food := g.GetFood()
	s := g.GetSnake()
	s.Body = []types.Point{g.Grid.Wrap(food.Add(types.Point{X: -1}))}
	s.Direction = types.Right
	return food
}

func TestNewGameFoodOffSnake(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		g := newTestGame(seed)
		if g.GetSnake().Occupies(g.GetFood()) {
			t.Fatalf("seed %d: food %v spawned on the snake", seed, g.GetFood())
		}
	}
}

func TestTickEatRespawnsFood(t *testing.T) {
	g := newTestGame(3)
	food := lineUpWithFood(g)

	if res := g.Tick(types.None); res != entity.AteFood {
		t.Fatalf("Tick = %v, want ate_food", res)
	}
	s := g.GetSnake()
	if s.Len() != 2 || s.GetHead() != food {
		t.Fatalf("after eating: len %d head %v, want 2 and %v", s.Len(), s.GetHead(), food)
	}
	if s.Occupies(g.GetFood()) {
		t.Errorf("respawned food %v is on the snake %v", g.GetFood(), s.Body)
	}

	stats := g.Stats()
	if stats.Score != 1 || stats.FoodEaten != 1 || stats.Ticks != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestTickIgnoresReversal(t *testing.T) {
	g := newTestGame(5)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 3, Y: 3}, {X: 2, Y: 3}}
	start := g.GetFood()
	if start == (types.Point{X: 4, Y: 3}) {
		t.Skip("food sits right in front of the snake for this seed")
	}

	if res := g.Tick(types.Left); res != entity.Moved {
		t.Fatalf("Tick(left) = %v, want moved", res)
	}
	if s.GetHead() != (types.Point{X: 4, Y: 3}) {
		t.Errorf("head = %v, reversal should have been ignored", s.GetHead())
	}
}

func TestTickTurnSurvivesLaterReversal(t *testing.T) {
	g := newTestGame(13)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 3, Y: 3}, {X: 2, Y: 3}}
	if g.GetFood() == (types.Point{X: 3, Y: 2}) {
		t.Skip("food sits right above the snake for this seed")
	}

	// Up then Left within one tick while heading right: Left is a reversal
	// and must not wipe out the Up queued before it.
	if res := g.Tick(types.Up, types.Left); res != entity.Moved {
		t.Fatalf("Tick = %v, want moved", res)
	}
	if s.Direction != types.Up {
		t.Errorf("direction = %v, want up", s.Direction)
	}
	if s.GetHead() != (types.Point{X: 3, Y: 2}) {
		t.Errorf("head = %v, want (3,2)", s.GetHead())
	}
}

func TestTickLastAcceptedIntentWins(t *testing.T) {
	g := newTestGame(17)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 3, Y: 3}}

	g.Tick(types.Up, types.Down)
	if s.Direction != types.Down {
		t.Errorf("direction = %v, want down", s.Direction)
	}
}

func TestTickCollisionCountsOnce(t *testing.T) {
	g := newTestGame(9)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}
	s.Direction = types.Down
	if g.GetFood() == (types.Point{X: 6, Y: 5}) {
		t.Skip("food sits on the collision cell for this seed")
	}

	if res := g.Tick(types.Right); res != entity.Collided {
		t.Fatalf("Tick = %v, want collided", res)
	}
	if diff := cmp.Diff([]types.Point{g.Grid.Center()}, s.Body); diff != "" {
		t.Errorf("body after reset (-want +got):\n%s", diff)
	}

	res := g.Tick(types.None)
	if res == entity.Collided {
		t.Errorf("second tick after reset collided again")
	}
	if c := g.Stats().Collisions; c != 1 {
		t.Errorf("Collisions = %d, want 1", c)
	}
}

type recordingListener struct {
	results []entity.StepResult
}

func (l *recordingListener) OnStep(res entity.StepResult) {
	l.results = append(l.results, res)
}

func TestListenersSeeEveryStep(t *testing.T) {
	g := newTestGame(11)
	l := &recordingListener{}
	g.AddListener(l)

	lineUpWithFood(g)
	g.Tick(types.None)
	g.Tick(types.None)

	if len(l.results) != 2 || l.results[0] != entity.AteFood {
		t.Errorf("listener saw %v", l.results)
	}
}

func TestFrameIsACopy(t *testing.T) {
	g := newTestGame(1)
	f := g.Frame()
	f.Body[0] = types.Point{X: -5, Y: -5}

	if g.GetSnake().GetHead() == f.Body[0] {
		t.Error("mutating the frame changed the snake")
	}
	if f.Food != g.GetFood() || f.Direction != types.Right || f.Grid != g.Grid {
		t.Errorf("frame = %+v", f)
	}
}

// scriptedInput replays one intent per tick and quits when it runs out
type scriptedInput struct {
	dirs  []types.Direction
	polls int
}

func (in *scriptedInput) Poll() ([]types.Direction, bool) {
	if in.polls >= len(in.dirs) {
		return nil, true
	}
	d := in.dirs[in.polls]
	in.polls++
	if d == types.None {
		return nil, false
	}
	return []types.Direction{d}, false
}

type countingRenderer struct {
	frames []Frame
	failAt int
}

func (r *countingRenderer) Render(f Frame) error {
	r.frames = append(r.frames, f)
	if r.failAt > 0 && len(r.frames) == r.failAt {
		return errors.New("surface lost")
	}
	return nil
}

type countingClock struct{ waits int }

func (c *countingClock) Wait() { c.waits++ }

func TestRunOneStepPerTick(t *testing.T) {
	g := newTestGame(21)
	in := &scriptedInput{dirs: []types.Direction{types.None, types.Down, types.None, types.Left}}
	out := &countingRenderer{}
	clk := &countingClock{}

	if err := g.Run(in, out, clk); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.frames) != 4 || clk.waits != 4 {
		t.Fatalf("frames %d waits %d, want 4 each", len(out.frames), clk.waits)
	}
	if g.Stats().Ticks != 4 {
		t.Errorf("Ticks = %d, want 4", g.Stats().Ticks)
	}
	for i, f := range out.frames {
		if f.Stats.Ticks != i+1 {
			t.Errorf("frame %d has tick %d", i, f.Stats.Ticks)
		}
	}
}

func TestRunQuitsBeforeStepping(t *testing.T) {
	g := newTestGame(2)
	head := g.GetSnake().GetHead()
	out := &countingRenderer{}

	if err := g.Run(&scriptedInput{}, out, NoClock{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.frames) != 0 || g.GetSnake().GetHead() != head {
		t.Error("quit should end the loop without a step")
	}
}

func TestRunStopsOnRenderError(t *testing.T) {
	g := newTestGame(4)
	in := &scriptedInput{dirs: make([]types.Direction, 10)}
	out := &countingRenderer{failAt: 3}

	err := g.Run(in, out, NoClock{})
	if err == nil || err.Error() != "surface lost" {
		t.Fatalf("Run error = %v, want surface lost", err)
	}
	if in.polls != 3 {
		t.Errorf("loop ran %d ticks after failure", in.polls-3)
	}
}
