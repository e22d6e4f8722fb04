// Package term is the tcell terminal frontend.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui/canvas"
)

// Each grid cell is two columns wide so cells look roughly square. The
// score line is drawn over the top row, like the window frontends do.
const termCellWidth = 2

// Terminal is the tcell frontend. Pace it with a game.TickerClock.
type Terminal struct {
	screen  tcell.Screen
	events  chan tcell.Event
	palette canvas.Palette
}

func NewTerminal(grid types.Grid) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen, grid)
}

func newTerminal(screen tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	if w, h := screen.Size(); w < grid.Width*termCellWidth || h < grid.Height {
		screen.Fini()
		return nil, fmt.Errorf("terminal is %dx%d, need at least %dx%d",
			w, h, grid.Width*termCellWidth, grid.Height)
	}
	screen.HideCursor()

	t := &Terminal{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		palette: canvas.DefaultPalette,
	}

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			t.events <- ev
		}
	}()

	return t, nil
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Poll drains pending events without blocking and returns the direction
// keys in the order they were pressed.
func (t *Terminal) Poll() ([]types.Direction, bool) {
	var dirs []types.Direction
	for {
		select {
		case ev := <-t.events:
			d, quit := t.handleEvent(ev)
			if quit {
				return nil, true
			}
			if d != types.None {
				dirs = append(dirs, d)
			}
		default:
			return dirs, false
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) (types.Direction, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return types.None, true
		case tcell.KeyUp:
			return types.Up, false
		case tcell.KeyDown:
			return types.Down, false
		case tcell.KeyLeft:
			return types.Left, false
		case tcell.KeyRight:
			return types.Right, false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return types.None, true
			case 'w', 'W':
				return types.Up, false
			case 's', 'S':
				return types.Down, false
			case 'a', 'A':
				return types.Left, false
			case 'd', 'D':
				return types.Right, false
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return types.None, false
}

func (t *Terminal) Render(f game.Frame) error {
	return canvas.Paint(t, f, t.palette)
}

func (t *Terminal) Begin(bg color.RGBA) {
	style := tcell.StyleDefault.Background(toTcell(bg))
	t.screen.Fill(' ', style)
}

func (t *Terminal) FillCell(p types.Point, fill, _ color.RGBA) {
	style := tcell.StyleDefault.Background(toTcell(fill))
	x := p.X * termCellWidth
	for dx := 0; dx < termCellWidth; dx++ {
		t.screen.SetContent(x+dx, p.Y, ' ', nil, style)
	}
}

func (t *Terminal) Text(line int, s string, c color.RGBA) {
	style := tcell.StyleDefault.
		Foreground(toTcell(c)).
		Background(toTcell(t.palette.Background))
	x := 0
	for _, r := range s {
		t.screen.SetContent(x, line, r, nil, style)
		x++
	}
}

func (t *Terminal) End() error {
	t.screen.Show()
	return nil
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
