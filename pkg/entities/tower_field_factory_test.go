package entities

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/config"
	"github.com/decker502/alienblitz/pkg/ecs"
)

// towerHeights 按列统计格子数量
func towerHeights(t *testing.T, em *ecs.EntityManager, cells []ecs.EntityID) map[int]int {
	t.Helper()
	heights := make(map[int]int)
	for _, id := range cells {
		cell, ok := ecs.GetComponent[*components.CellComponent](em, id)
		if !ok {
			t.Fatalf("entity %d has no CellComponent", id)
		}
		heights[cell.Column]++
	}
	return heights
}

func TestNewTowerFieldShape(t *testing.T) {
	cfg := config.DefaultGameConfig()
	spec := TowerFieldSpecFromConfig(cfg)

	for seed := int64(1); seed <= 50; seed++ {
		em := ecs.NewEntityManager()
		cells := NewTowerField(em, rand.New(rand.NewSource(seed)), spec)

		heights := towerHeights(t, em, cells)
		if len(heights) != cfg.Field.NumTowers {
			t.Fatalf("seed %d: expected %d towers, got %d", seed, cfg.Field.NumTowers, len(heights))
		}
		for col, h := range heights {
			if col < -10 || col > 9 {
				t.Errorf("seed %d: column %d outside [-10, 9]", seed, col)
			}
			if h < 1 || h > cfg.Field.MaxTowerHeight {
				t.Errorf("seed %d: tower %d height %d outside [1, %d]", seed, col, h, cfg.Field.MaxTowerHeight)
			}
		}
	}
}

func TestNewTowerFieldGeometry(t *testing.T) {
	spec := TowerFieldSpecFromConfig(config.DefaultGameConfig())
	em := ecs.NewEntityManager()
	cells := NewTowerField(em, rand.New(rand.NewSource(7)), spec)

	prevCol, prevLevel := -11, -1
	for _, id := range cells {
		cell, _ := ecs.GetComponent[*components.CellComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		// 按列从左到右、每列自下而上
		if cell.Column == prevCol {
			if cell.Level != prevLevel+1 {
				t.Errorf("column %d: level %d follows %d", cell.Column, cell.Level, prevLevel)
			}
		} else if cell.Column != prevCol+1 || cell.Level != 0 {
			t.Errorf("unexpected cell order: column %d level %d after column %d", cell.Column, cell.Level, prevCol)
		}
		prevCol, prevLevel = cell.Column, cell.Level

		wantX := float64(cell.Column)*spec.Layout.CellSize + spec.Layout.Offset
		wantY := spec.Layout.Ground() + float64(cell.Level)*spec.Layout.CellSize + spec.Layout.Offset
		if pos.X != wantX || pos.Y != wantY {
			t.Errorf("column %d level %d at (%.2f, %.2f), want (%.2f, %.2f)",
				cell.Column, cell.Level, pos.X, pos.Y, wantX, wantY)
		}
	}
}

func TestNewTowerFieldUsesPaletteOnly(t *testing.T) {
	spec := TowerFieldSpecFromConfig(config.DefaultGameConfig())
	allowed := make(map[color.RGBA]bool)
	for _, c := range spec.Palette {
		allowed[c] = true
	}

	seen := make(map[color.RGBA]bool)
	for seed := int64(1); seed <= 20; seed++ {
		em := ecs.NewEntityManager()
		for _, id := range NewTowerField(em, rand.New(rand.NewSource(seed)), spec) {
			cell, _ := ecs.GetComponent[*components.CellComponent](em, id)
			if !allowed[cell.Color] {
				t.Fatalf("color %v is not in the palette", cell.Color)
			}
			seen[cell.Color] = true
		}
	}
	if len(seen) != len(allowed) {
		t.Errorf("expected every palette color to appear, saw %d of %d", len(seen), len(allowed))
	}
}

func TestNewTowerFieldIsDeterministicPerSeed(t *testing.T) {
	spec := TowerFieldSpecFromConfig(config.DefaultGameConfig())
	emA, emB := ecs.NewEntityManager(), ecs.NewEntityManager()
	a := NewTowerField(emA, rand.New(rand.NewSource(42)), spec)
	b := NewTowerField(emB, rand.New(rand.NewSource(42)), spec)

	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d cells", len(a), len(b))
	}
	ha, hb := towerHeights(t, emA, a), towerHeights(t, emB, b)
	for col := range ha {
		if ha[col] != hb[col] {
			t.Errorf("tower %d: heights %d and %d differ", col, ha[col], hb[col])
		}
	}
}

func TestNewPlaneAndBombEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	plane := NewPlaneEntity(em, -375, 275)
	bomb := NewBombEntity(em, -375, 275)

	if _, ok := ecs.GetComponent[*components.PlaneComponent](em, plane); !ok {
		t.Error("plane entity has no PlaneComponent")
	}
	b, ok := ecs.GetComponent[*components.BombComponent](em, bomb)
	if !ok || b.Active {
		t.Errorf("bomb should start hidden, got %+v", b)
	}
	if pos, _ := ecs.GetComponent[*components.PositionComponent](em, plane); pos.X != -375 || pos.Y != 275 {
		t.Errorf("plane at (%v, %v)", pos.X, pos.Y)
	}
	if cells := ecs.GetEntitiesWith2[*components.CellComponent, *components.PositionComponent](em); len(cells) != 0 {
		t.Errorf("plane and bomb must not be cells, got %d", len(cells))
	}
}
