package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui/canvas"
)

const (
	hudFontSize   = 20
	hudLineHeight = 24
	hudPadding    = 5
)

// Window is the raylib frontend. It is the renderer, the input and, through
// EndDrawing and the target FPS, the clock.
type Window struct {
	cellSize int32
	palette  canvas.Palette
	frame    game.Frame
}

// NewWindow opens the window. Frames are paced at ticksPerSecond, so the
// loop should run with game.NoClock.
func NewWindow(width, height, cellSize, ticksPerSecond int, title string) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(ticksPerSecond))

	return &Window{
		cellSize: int32(cellSize),
		palette:  canvas.DefaultPalette,
	}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// Poll drains the key queue in press order. Escape and the close button
// quit.
func (w *Window) Poll() ([]types.Direction, bool) {
	if rl.WindowShouldClose() {
		return nil, true
	}

	var dirs []types.Direction
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d := keyDirection(key); d != types.None {
			dirs = append(dirs, d)
		}
	}
	return dirs, false
}

func keyDirection(key int32) types.Direction {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.Up
	case rl.KeyDown, rl.KeyS:
		return types.Down
	case rl.KeyLeft, rl.KeyA:
		return types.Left
	case rl.KeyRight, rl.KeyD:
		return types.Right
	default:
		return types.None
	}
}

func (w *Window) Render(f game.Frame) error {
	w.frame = f
	return canvas.Paint(w, f, w.palette)
}

func (w *Window) Begin(bg color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(toRL(bg))
}

func (w *Window) FillCell(p types.Point, fill, border color.RGBA) {
	x := int32(p.X) * w.cellSize
	y := int32(p.Y) * w.cellSize
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, toRL(fill))
	rl.DrawRectangleLines(x, y, w.cellSize, w.cellSize, toRL(border))
}

func (w *Window) Text(line int, s string, c color.RGBA) {
	rl.DrawText(s, hudPadding, hudPadding+int32(line)*hudLineHeight, hudFontSize, toRL(c))
}

func (w *Window) End() error {
	if len(w.frame.Body) > 0 {
		w.drawDirection(w.frame.Body[0], w.frame.Direction)
	}
	rl.EndDrawing()
	return nil
}

// drawDirection puts a small arrow on the head
func (w *Window) drawDirection(head types.Point, dir types.Direction) {
	headX := float32(int32(head.X) * w.cellSize)
	headY := float32(int32(head.Y) * w.cellSize)
	cell := float32(w.cellSize)
	half := cell / 2
	arrow := rl.Yellow

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			arrow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + half, Y: headY},
			arrow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX, Y: headY + half},
			arrow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			arrow)
	}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
