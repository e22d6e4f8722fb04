// Package ebitenui runs the game inside an ebiten window. ebiten owns the
// loop here: it calls Update at the configured TPS, which stands in for the
// clock.
package ebitenui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui/canvas"
)

const hudLineHeight = 16

type Frontend struct {
	game     *game.Game
	cellSize int
	width    int
	height   int
	palette  canvas.Palette

	keys   []ebiten.Key
	screen *ebiten.Image
}

func New(g *game.Game, width, height, cellSize int) *Frontend {
	return &Frontend{
		game:     g,
		cellSize: cellSize,
		width:    width,
		height:   height,
		palette:  canvas.DefaultPalette,
	}
}

// Run opens the window and blocks until it is closed or Escape is pressed
func (f *Frontend) Run(ticksPerSecond int) error {
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowSize(f.width, f.height)
	ebiten.SetTPS(ticksPerSecond)

	err := ebiten.RunGame(f)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Poll returns the direction keys pressed since the previous tick
func (f *Frontend) Poll() ([]types.Direction, bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, true
	}

	f.keys = inpututil.AppendJustPressedKeys(f.keys[:0])
	return keyDirections(f.keys), false
}

func keyDirections(keys []ebiten.Key) []types.Direction {
	var dirs []types.Direction
	for _, k := range keys {
		if d := keyDirection(k); d != types.None {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func keyDirection(k ebiten.Key) types.Direction {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return types.Up
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return types.Down
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return types.Left
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return types.Right
	default:
		return types.None
	}
}

func (f *Frontend) Update() error {
	dirs, quit := f.Poll()
	if quit {
		return ebiten.Termination
	}
	f.game.Tick(dirs...)
	return nil
}

func (f *Frontend) Draw(screen *ebiten.Image) {
	f.screen = screen
	// End never fails on an ebiten image
	_ = canvas.Paint(f, f.game.Frame(), f.palette)
}

func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.width, f.height
}

func (f *Frontend) Begin(bg color.RGBA) {
	f.screen.Fill(bg)
}

func (f *Frontend) FillCell(p types.Point, fill, border color.RGBA) {
	x := float32(p.X * f.cellSize)
	y := float32(p.Y * f.cellSize)
	size := float32(f.cellSize)
	vector.FillRect(f.screen, x, y, size, size, fill, false)
	vector.StrokeRect(f.screen, x, y, size, size, 1, border, false)
}

// Text uses the debug font, which is always white
func (f *Frontend) Text(line int, s string, _ color.RGBA) {
	ebitenutil.DebugPrintAt(f.screen, s, 4, line*hudLineHeight)
}

func (f *Frontend) End() error {
	return nil
}
