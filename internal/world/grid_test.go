package world

import (
	"errors"
	"testing"
)

func TestNewGridFillsWalls(t *testing.T) {
	g, err := NewGrid(8, 5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Width() != 8 || g.Height() != 5 {
		t.Fatalf("Expected 8x5, got %dx%d", g.Width(), g.Height())
	}
	if n := g.CountTiles(Wall); n != 40 {
		t.Errorf("Expected 40 wall tiles, got %d", n)
	}
}

func TestNewGridInvalidDimension(t *testing.T) {
	tests := []struct{ w, h int }{
		{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0},
	}
	for _, tt := range tests {
		if _, err := NewGrid(tt.w, tt.h); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimension", tt.w, tt.h, err)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if _, err := g.Get(x, y); err != nil {
				t.Errorf("Get(%d,%d) failed: %v", x, y, err)
			}
			if err := g.Set(x, y, Floor); err != nil {
				t.Errorf("Set(%d,%d) failed: %v", x, y, err)
			}
		}
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}, {100, 100}}
	for _, p := range outside {
		if _, err := g.Get(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d,%d) error = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if err := g.Set(p[0], p[1], Floor); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d) error = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if g.IsWalkable(p[0], p[1]) {
			t.Errorf("IsWalkable(%d,%d) should be false outside the grid", p[0], p[1])
		}
	}
}

func TestGridFillRect(t *testing.T) {
	g, err := NewGrid(6, 6)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if err := g.FillRect(1, 2, 4, 5, Floor); err != nil {
		t.Fatalf("FillRect failed: %v", err)
	}
	if n := g.CountTiles(Floor); n != 9 {
		t.Errorf("Expected 9 floor tiles, got %d", n)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			tile, _ := g.Get(x, y)
			inside := x >= 1 && x < 4 && y >= 2 && y < 5
			if inside != (tile == Floor) {
				t.Errorf("Tile at (%d,%d) = %q, inside=%v", x, y, tile.Rune(), inside)
			}
		}
	}

	// Empty rectangles do nothing.
	if err := g.FillRect(3, 3, 3, 5, Wall); err != nil {
		t.Errorf("Empty FillRect failed: %v", err)
	}

	// Rectangles leaving the grid are rejected whole.
	if err := g.FillRect(4, 0, 7, 2, Floor); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("FillRect error = %v, want ErrOutOfBounds", err)
	}
	if n := g.CountTiles(Floor); n != 9 {
		t.Errorf("Rejected FillRect modified the grid: %d floor tiles", n)
	}
}

func TestGridCloneAndEqual(t *testing.T) {
	g, _ := NewGrid(3, 3)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("Clone should equal original")
	}

	_ = c.Set(1, 1, Floor)
	if g.Equal(c) {
		t.Error("Modified clone should differ from original")
	}
	if tile, _ := g.Get(1, 1); tile != Wall {
		t.Error("Modifying clone changed original")
	}

	if err := g.CopyFrom(c); err != nil {
		t.Fatalf("CopyFrom failed: %v", err)
	}
	if !g.Equal(c) {
		t.Error("CopyFrom should make grids equal")
	}

	other, _ := NewGrid(3, 4)
	if err := g.CopyFrom(other); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("CopyFrom error = %v, want ErrInvalidDimension", err)
	}
	if g.Equal(other) || g.Equal(nil) {
		t.Error("Grids of different size should not be equal")
	}
}

func TestGridString(t *testing.T) {
	g, _ := NewGrid(3, 2)
	_ = g.Set(1, 0, Floor)

	want := "# #\n###\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
