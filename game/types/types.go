package types

import "fmt"

// Default playfield, taken from the classic 640x480 window with 20px cells
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultCellSize     = 20
	DefaultTicksPerSec  = 10
)

// Point is a cell on the grid (column, row)
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions. Both edges wrap around.
type Grid struct {
	Width  int
	Height int
}

// NewGrid derives the grid from a screen resolution and a cell size.
func NewGrid(screenWidth, screenHeight, cellSize int) (Grid, error) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return Grid{}, fmt.Errorf("screen size must be positive, got %dx%d", screenWidth, screenHeight)
	}
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	grid := Grid{
		Width:  screenWidth / cellSize,
		Height: screenHeight / cellSize,
	}
	if grid.Width == 0 || grid.Height == 0 {
		return Grid{}, fmt.Errorf("cell size %d does not fit a %dx%d screen", cellSize, screenWidth, screenHeight)
	}
	return grid, nil
}

// Wrap maps any point back onto the grid. Negative coordinates wrap to the
// high end.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Contains reports whether p is already inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center is where a fresh snake spawns
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Direction is a cardinal direction
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}
