package level

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/levels"
)

// Tile is one drawable cell of a loaded map.
type Tile struct {
	Cell  Cell
	Asset string
	Solid bool
}

// Map is a level ready for the simulation: drawable tiles, the solid registry
// built from them, the player spawn and the map triggers.
type Map struct {
	Name     string
	Width    int
	Height   int
	Tiles    []Tile
	Spawn    common.Vec3
	Triggers []levels.Trigger

	solids *SolidTiles
}

// LoadFromFS loads a map embedded in the levels package.
func LoadFromFS(name string) (*Map, error) {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", name, err)
	}
	return FromLevel(name, lvl)
}

// Load reads a map from disk.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	lvl, err := levels.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", path, err)
	}
	return FromLevel(path, lvl)
}

// FromLevel turns the decoded map format into a Map. Unknown tile ids are
// skipped; duplicate ids in the tile mapping are an error.
func FromLevel(name string, lvl *levels.Level) (*Map, error) {
	if lvl == nil {
		return nil, fmt.Errorf("level: %s: nil level", name)
	}
	lookup := make(map[int]levels.TileMapping, len(lvl.TileMapping))
	for _, tm := range lvl.TileMapping {
		if _, dup := lookup[tm.ID]; dup {
			return nil, fmt.Errorf("level: %s: duplicate tile id %d", name, tm.ID)
		}
		lookup[tm.ID] = tm
	}

	m := &Map{
		Name:     name,
		Width:    lvl.Width,
		Height:   lvl.Height,
		Triggers: lvl.Triggers,
		solids:   NewSolidTiles(),
	}
	for _, layer := range lvl.Layers {
		for i, id := range layer.Data {
			if id == 0 {
				continue
			}
			tm, ok := lookup[id]
			if !ok {
				continue
			}
			c := Cell{X: i % lvl.Width, Y: i / lvl.Width, Z: layer.ZLevel}
			solid := tileSolid(tm, layer.ZLevel)
			m.Tiles = append(m.Tiles, Tile{Cell: c, Asset: tm.AssetName, Solid: solid})
			if solid {
				m.solids.Set(c)
			}
		}
	}

	if lvl.Spawn != nil {
		m.Spawn = common.V3(lvl.Spawn.X, lvl.Spawn.Y, lvl.Spawn.Z)
	} else {
		m.Spawn = common.V3(float64(lvl.Width/2), float64(lvl.Height/2), 0)
	}
	return m, nil
}

// tileSolid: explicitly solid tiles, anything above the ground layer, and
// water on the ground layer block movement.
func tileSolid(tm levels.TileMapping, z int) bool {
	if tm.Solid {
		return true
	}
	if z > 0 {
		return true
	}
	return z == 0 && strings.Contains(tm.AssetName, "water_")
}

// Solids returns the registry built while loading. It is shared, not copied.
func (m *Map) Solids() *SolidTiles {
	if m == nil {
		return nil
	}
	return m.solids
}

// InBounds reports whether c lies on the planar extent of the map.
func (m *Map) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.Width && c.Y < m.Height
}

// TriggerAt returns the first trigger whose radius contains the planar point.
func (m *Map) TriggerAt(x, y float64) (levels.Trigger, bool) {
	for _, t := range m.Triggers {
		r := t.Radius
		if r <= 0 {
			r = levels.DefaultTriggerRadius
		}
		if math.Hypot(x-t.Position.X, y-t.Position.Y) <= r {
			return t, true
		}
	}
	return levels.Trigger{}, false
}

// BlocksAt treats everything outside the map as blocked, so searches over a
// Map stay on the map.
func (m *Map) BlocksAt(c Cell) bool {
	return !m.InBounds(c) || m.solids.BlocksAt(c)
}
