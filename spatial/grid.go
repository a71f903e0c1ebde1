package spatial

import (
	"math"

	"github.com/g-brrzzn/IsoSurvivor/ecs"
)

// DefaultCellSize is used when a grid is built with a non-positive size.
const DefaultCellSize = 100

type cellKey struct {
	X, Y int
}

// Grid is a uniform-bucket broad phase over live entities. It is cleared and
// refilled every tick; bucket slices keep their capacity across ticks.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]ecs.Entity
	count    int
}

func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]ecs.Entity),
	}
}

func (g *Grid) CellSize() float64 {
	return g.cellSize
}

func (g *Grid) key(x, y float64) cellKey {
	return cellKey{
		X: int(math.Floor(x / g.cellSize)),
		Y: int(math.Floor(y / g.cellSize)),
	}
}

// Clear empties every bucket without releasing its backing array.
func (g *Grid) Clear() {
	for k, bucket := range g.cells {
		g.cells[k] = bucket[:0]
	}
	g.count = 0
}

func (g *Grid) Register(e ecs.Entity, x, y float64) {
	k := g.key(x, y)
	g.cells[k] = append(g.cells[k], e)
	g.count++
}

// RetrieveNear returns every entity registered in the 3x3 block of cells
// around (x, y). The result contains all entities within one cell size of
// the point and possibly more; callers filter by exact distance.
func (g *Grid) RetrieveNear(x, y float64) []ecs.Entity {
	return g.AppendNear(nil, x, y)
}

// AppendNear is RetrieveNear appending into dst.
func (g *Grid) AppendNear(dst []ecs.Entity, x, y float64) []ecs.Entity {
	k := g.key(x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			dst = append(dst, g.cells[cellKey{X: k.X + dx, Y: k.Y + dy}]...)
		}
	}
	return dst
}

// Len returns the number of registrations since the last Clear.
func (g *Grid) Len() int {
	return g.count
}
