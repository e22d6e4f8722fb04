package game

import (
	"github.com/rs/zerolog/log"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Input delivers what the player did since the previous tick: every
// direction pressed, oldest first, and whether to quit.
type Input interface {
	Poll() ([]types.Direction, bool)
}

// Renderer draws a frame. It must not hold on to the frame's slices past the
// call unless it copies them.
type Renderer interface {
	Render(Frame) error
}

// Clock blocks until the next tick boundary
type Clock interface {
	Wait()
}

// Listener is notified after every step
type Listener interface {
	OnStep(entity.StepResult)
}

// Frame is the read-only state handed to renderers once per tick
type Frame struct {
	Grid      types.Grid
	Body      []types.Point
	Food      types.Point
	Direction types.Direction
	Result    entity.StepResult
	Stats     manager.SessionStats
}

type Game struct {
	Grid types.Grid

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	listeners    []Listener
	lastResult   entity.StepResult
}

// Options for a new session
type Options struct {
	Grid               types.Grid
	CollisionExemption int
	Seed               uint64
}

func NewGame(opts Options) *Game {
	collisionMgr := manager.NewCollisionManager(opts.Grid)

	g := &Game{
		Grid:         opts.Grid,
		snake:        entity.NewSnake(opts.Grid, opts.CollisionExemption),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(opts.Grid, collisionMgr, opts.Seed),
		stateMgr:     manager.NewStateManager(),
	}
	g.foodMgr.Place(g.snake.Body)

	return g
}

func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}

// Tick runs exactly one step. dirs are the player's intents since the last
// tick in the order they arrived; each is queued in turn, so the last one
// that is not a reversal wins.
func (g *Game) Tick(dirs ...types.Direction) entity.StepResult {
	for _, d := range dirs {
		g.snake.QueueDirection(d)
	}

	before := g.snake.Len()
	res := g.snake.Step(g.foodMgr.GetFood())

	switch res {
	case entity.AteFood:
		food := g.foodMgr.Place(g.snake.Body)
		log.Debug().Int("length", g.snake.Len()).Stringer("food", food).Msg("food eaten")
	case entity.Collided:
		log.Info().Int("lost", before-1).Msg("snake bit itself, resetting")
		// The fresh snake may have respawned right on the food
		if g.snake.Occupies(g.foodMgr.GetFood()) {
			g.foodMgr.Place(g.snake.Body)
		}
	}

	g.stateMgr.Record(res, g.snake.Len())
	g.lastResult = res

	for _, l := range g.listeners {
		l.OnStep(res)
	}
	return res
}

// Frame snapshots the current state
func (g *Game) Frame() Frame {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	return Frame{
		Grid:      g.Grid,
		Body:      body,
		Food:      g.foodMgr.GetFood(),
		Direction: g.snake.Direction,
		Result:    g.lastResult,
		Stats:     g.stateMgr.Stats(),
	}
}

// Run drives the session until the input asks to quit. A render error stops
// the loop and is returned.
func (g *Game) Run(in Input, out Renderer, clk Clock) error {
	for {
		dirs, quit := in.Poll()
		if quit {
			return nil
		}

		g.Tick(dirs...)

		if err := out.Render(g.Frame()); err != nil {
			return err
		}

		clk.Wait()
	}
}
