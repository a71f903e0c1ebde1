package level

import (
	"testing"

	"github.com/g-brrzzn/IsoSurvivor/levels"
)

func testLevel() *levels.Level {
	return &levels.Level{
		Width:  3,
		Height: 2,
		TileMapping: []levels.TileMapping{
			{ID: 1, AssetName: "tile_floor"},
			{ID: 2, AssetName: "tile_wall", Solid: true},
			{ID: 3, AssetName: "water_deep"},
			{ID: 4, AssetName: "tile_crate"},
		},
		Layers: []levels.Layer{
			{Name: "ground", ZLevel: 0, Data: []int{1, 3, 2, 1, 1, 9}},
			{Name: "upper", ZLevel: 1, Data: []int{0, 0, 0, 4, 0, 0}},
		},
		Triggers: []levels.Trigger{
			{ID: "exit", Position: levels.Point{X: 2, Y: 1}, Radius: 0.5},
		},
	}
}

func TestFromLevelSolidRules(t *testing.T) {
	m, err := FromLevel("test", testLevel())
	if err != nil {
		t.Fatalf("FromLevel: %v", err)
	}
	tests := []struct {
		name  string
		cell  Cell
		solid bool
	}{
		{name: "floor", cell: Cell{0, 0, 0}, solid: false},
		{name: "water on ground", cell: Cell{1, 0, 0}, solid: true},
		{name: "marked solid", cell: Cell{2, 0, 0}, solid: true},
		{name: "upper layer", cell: Cell{0, 1, 1}, solid: true},
		{name: "unknown id skipped", cell: Cell{2, 1, 0}, solid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Solids().IsSolid(tt.cell); got != tt.solid {
				t.Fatalf("IsSolid(%v) = %v, want %v", tt.cell, got, tt.solid)
			}
		})
	}
	if !m.Solids().BlocksAt(Cell{0, 1, 0}) {
		t.Fatalf("ground under upper-layer tile should block")
	}
	if len(m.Tiles) != 6 {
		t.Fatalf("expected 6 tiles, got %d", len(m.Tiles))
	}
}

func TestFromLevelDuplicateID(t *testing.T) {
	lvl := testLevel()
	lvl.TileMapping = append(lvl.TileMapping, levels.TileMapping{ID: 1, AssetName: "again"})
	if _, err := FromLevel("dup", lvl); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestTriggerAt(t *testing.T) {
	m, err := FromLevel("test", testLevel())
	if err != nil {
		t.Fatalf("FromLevel: %v", err)
	}
	if tr, ok := m.TriggerAt(2.3, 1.2); !ok || tr.ID != "exit" {
		t.Fatalf("expected exit trigger, got %+v %v", tr, ok)
	}
	if _, ok := m.TriggerAt(0, 0); ok {
		t.Fatalf("expected no trigger at origin")
	}
}

func TestLoadEmbeddedLevels(t *testing.T) {
	for _, name := range []string{"arena.json", "courtyard.json"} {
		t.Run(name, func(t *testing.T) {
			m, err := LoadFromFS(name)
			if err != nil {
				t.Fatalf("LoadFromFS: %v", err)
			}
			if m.Solids().Len() == 0 {
				t.Fatalf("expected solid cells in %s", name)
			}
			spawn := CellOf(m.Spawn.X, m.Spawn.Y, m.Spawn.Z)
			if m.Solids().BlocksAt(spawn) {
				t.Fatalf("spawn %v is blocked", spawn)
			}
			if len(m.Triggers) == 0 {
				t.Fatalf("expected triggers in %s", name)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	a := Generate(40, 30, 7)
	b := Generate(40, 30, 7)
	if a.Solids().Len() != b.Solids().Len() {
		t.Fatalf("same seed produced different maps: %d vs %d", a.Solids().Len(), b.Solids().Len())
	}
	if !a.Solids().BlocksAt(Cell{0, 0, 0}) {
		t.Fatalf("border should block")
	}
	if a.Solids().BlocksAt(Cell{5, 10, 0}) {
		t.Fatalf("doorway should be open")
	}
	if !a.Solids().IsSolid(Cell{10, 15, 2}) {
		t.Fatalf("stacked column missing")
	}
	spawn := CellOf(a.Spawn.X, a.Spawn.Y, 0)
	if a.Solids().BlocksAt(spawn) {
		t.Fatalf("spawn blocked")
	}
}
