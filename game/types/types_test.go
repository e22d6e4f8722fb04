package types

import "testing"

func TestWrap(t *testing.T) {
	grid := Grid{Width: 32, Height: 24}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{X: 5, Y: 7}, Point{X: 5, Y: 7}},
		{"right edge", Point{X: 32, Y: 12}, Point{X: 0, Y: 12}},
		{"left edge", Point{X: -1, Y: 12}, Point{X: 31, Y: 12}},
		{"top edge", Point{X: 3, Y: -1}, Point{X: 3, Y: 23}},
		{"bottom edge", Point{X: 3, Y: 24}, Point{X: 3, Y: 0}},
		{"far negative", Point{X: -65, Y: -49}, Point{X: 31, Y: 23}},
		{"far positive", Point{X: 100, Y: 100}, Point{X: 4, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid.Wrap(tt.in); got != tt.want {
				t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrapIdempotent(t *testing.T) {
	grid := Grid{Width: 7, Height: 5}
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			p := Point{X: x, Y: y}
			once := grid.Wrap(p)
			if !grid.Contains(once) {
				t.Fatalf("Wrap(%v) = %v is off the grid", p, once)
			}
			if twice := grid.Wrap(once); twice != once {
				t.Fatalf("Wrap not idempotent for %v: %v then %v", p, once, twice)
			}
			if grid.Contains(p) && once != p {
				t.Fatalf("Wrap moved in-range point %v to %v", p, once)
			}
		}
	}
}

func TestNewGrid(t *testing.T) {
	grid, err := NewGrid(DefaultScreenWidth, DefaultScreenHeight, DefaultCellSize)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if grid.Width != 32 || grid.Height != 24 {
		t.Errorf("got %dx%d grid, want 32x24", grid.Width, grid.Height)
	}
	if c := grid.Center(); c != (Point{X: 16, Y: 12}) {
		t.Errorf("Center() = %v", c)
	}

	bad := []struct{ w, h, cell int }{
		{0, 480, 20},
		{640, -1, 20},
		{640, 480, 0},
		{640, 480, 500},
	}
	for _, b := range bad {
		if _, err := NewGrid(b.w, b.h, b.cell); err == nil {
			t.Errorf("NewGrid(%d, %d, %d) should fail", b.w, b.h, b.cell)
		}
	}
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite is %v", d, d.Opposite().Opposite())
		}
		sum := d.ToPoint().Add(d.Opposite().ToPoint())
		if sum != (Point{}) {
			t.Errorf("%v and its opposite do not cancel: %v", d, sum)
		}
	}
	if None.Opposite() != None || None.ToPoint() != (Point{}) {
		t.Error("None should have no opposite and no delta")
	}
}
