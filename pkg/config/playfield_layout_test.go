package config

import (
	"math"
	"testing"
)

func TestLayoutDefaults(t *testing.T) {
	l := DefaultGameConfig().Layout()

	if l.HalfWidth != 375 || l.HalfHeight != 275 || l.Left != -375 || l.Bottom != -275 {
		t.Errorf("expected extents [-375, 375]x[-275, 275], got [%.1f, %.1f]x[%.1f, %.1f]",
			l.Left, l.HalfWidth, l.Bottom, l.HalfHeight)
	}
	if l.Width != 750 || l.Height != 550 {
		t.Errorf("expected playfield 750x550, got %.1fx%.1f", l.Width, l.Height)
	}
	if l.CellSize != 37.5 {
		t.Errorf("expected cell size 37.5, got %.2f", l.CellSize)
	}
	if l.Offset != 18.75 {
		t.Errorf("expected offset 18.75, got %.2f", l.Offset)
	}
	if x, y := l.StartPosition(); x != -375 || y != 275 {
		t.Errorf("expected start (-375, 275), got (%.1f, %.1f)", x, y)
	}
	if l.FirstColumn() != -10 {
		t.Errorf("expected first column -10, got %d", l.FirstColumn())
	}
	if got := l.ColumnX(-10); got != -356.25 {
		t.Errorf("expected leftmost column at -356.25, got %.2f", got)
	}
	if got := l.RowY(0); got != -256.25 {
		t.Errorf("expected ground cell at -256.25, got %.2f", got)
	}
}

func TestLayoutOddTowerCountIsSymmetric(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Field.NumTowers = 5
	l := cfg.Layout()

	first := l.ColumnX(l.FirstColumn())
	last := l.ColumnX(l.FirstColumn() + l.NumTowers - 1)
	if math.Abs(first+last) > 1e-9 {
		t.Errorf("columns not centered: first %.2f, last %.2f", first, last)
	}
}

func TestLayoutOddPlayfieldFloorsNegativeExtents(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantLeft      float64
		wantRight     float64
		wantTop       float64
		wantGround    float64
	}{
		{"even", 800, 600, -375, 375, 275, -275},
		{"odd width", 801, 600, -376, 375, 275, -275},
		{"odd height", 800, 601, -375, 375, 275, -276},
		{"both odd", 801, 601, -376, 375, 275, -276},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			cfg.Window.Width, cfg.Window.Height = tt.width, tt.height
			l := cfg.Layout()

			x, y := l.StartPosition()
			if x != tt.wantLeft || y != tt.wantTop {
				t.Errorf("start = (%v, %v), want (%v, %v)", x, y, tt.wantLeft, tt.wantTop)
			}
			if l.HalfWidth != tt.wantRight {
				t.Errorf("right edge = %v, want %v", l.HalfWidth, tt.wantRight)
			}
			if l.Ground() != tt.wantGround {
				t.Errorf("ground = %v, want %v", l.Ground(), tt.wantGround)
			}
			if l.RowY(0) != tt.wantGround+l.Offset {
				t.Errorf("first row = %v, want %v", l.RowY(0), tt.wantGround+l.Offset)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{-751, 2, -376},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
