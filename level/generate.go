package level

import (
	"math/rand"

	"github.com/g-brrzzn/IsoSurvivor/common"
)

const (
	assetFloor = "tile_floor"
	assetWall  = "tile_wall"
)

// Generate builds a walled arena: floor everywhere, a wall ring on layer 1,
// an L-shaped keep with a doorway, one stacked column and seed-dependent
// pillars kept clear of the centre spawn.
func Generate(width, height int, seed int64) *Map {
	if width < 3 {
		width = 3
	}
	if height < 3 {
		height = 3
	}
	m := &Map{
		Name:   "generated",
		Width:  width,
		Height: height,
		Spawn:  common.V3(float64(width/2), float64(height/2), 0),
		solids: NewSolidTiles(),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Tiles = append(m.Tiles, Tile{Cell: Cell{X: x, Y: y}, Asset: assetFloor})
		}
	}

	wall := func(c Cell) {
		if !m.InBounds(c) || m.solids.IsSolid(c) {
			return
		}
		m.Tiles = append(m.Tiles, Tile{Cell: c, Asset: assetWall, Solid: true})
		m.solids.Set(c)
	}

	for x := 0; x < width; x++ {
		wall(Cell{X: x, Y: 0, Z: 1})
		wall(Cell{X: x, Y: height - 1, Z: 1})
	}
	for y := 1; y < height-1; y++ {
		wall(Cell{X: 0, Y: y, Z: 1})
		wall(Cell{X: width - 1, Y: y, Z: 1})
	}

	door := Cell{X: 5, Y: 10, Z: 1}
	for i := 5; i < 15; i++ {
		if i != door.Y {
			wall(Cell{X: 5, Y: i, Z: 1})
		}
		wall(Cell{X: i, Y: 5, Z: 1})
	}
	for z := 1; z <= 2; z++ {
		wall(Cell{X: 10, Y: 15, Z: z})
	}

	rng := rand.New(rand.NewSource(seed))
	spawn := CellOf(m.Spawn.X, m.Spawn.Y, 0)
	pillars := width * height / 100
	for i := 0; i < pillars; i++ {
		c := Cell{X: 1 + rng.Intn(width-2), Y: 1 + rng.Intn(height-2), Z: 1}
		if c == door || (abs(c.X-spawn.X) <= 3 && abs(c.Y-spawn.Y) <= 3) {
			continue
		}
		wall(c)
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
