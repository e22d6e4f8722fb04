// Package canvas holds the drawing logic shared by every frontend. A
// frontend only has to know how to fill one cell and print one line.
package canvas

import (
	"fmt"
	"image/color"

	"gridsnake/game"
	"gridsnake/game/types"
)

// Canvas is a render target. It is always passed in explicitly.
type Canvas interface {
	Begin(bg color.RGBA)
	FillCell(p types.Point, fill, border color.RGBA)
	Text(line int, s string, c color.RGBA)
	End() error
}

type Palette struct {
	Background color.RGBA
	Border     color.RGBA
	Apple      color.RGBA
	Snake      color.RGBA
	Head       color.RGBA
	Text       color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	Border:     color.RGBA{R: 93, G: 216, B: 228, A: 255},
	Apple:      color.RGBA{R: 255, G: 0, B: 0, A: 255},
	Snake:      color.RGBA{R: 0, G: 255, B: 0, A: 255},
	Head:       color.RGBA{R: 170, G: 255, B: 170, A: 255},
	Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
}

// Paint draws one frame: food first, then the body from tail to head so the
// head always ends up on top, then the score line.
func Paint(c Canvas, f game.Frame, pal Palette) error {
	c.Begin(pal.Background)

	c.FillCell(f.Food, pal.Apple, pal.Border)

	for i := len(f.Body) - 1; i >= 0; i-- {
		fill := pal.Snake
		if i == 0 {
			fill = pal.Head
		}
		c.FillCell(f.Body[i], fill, pal.Border)
	}

	c.Text(0, HUD(f), pal.Text)

	return c.End()
}

// HUD is the status line shown above the grid
func HUD(f game.Frame) string {
	return fmt.Sprintf("Score: %d  Best: %d", f.Stats.Score, f.Stats.BestScore)
}
