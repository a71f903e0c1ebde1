package level

import (
	"fmt"
	"math"

	"github.com/g-brrzzn/IsoSurvivor/common"
)

// Cell is an integer grid coordinate: two planar axes plus the vertical layer.
type Cell struct {
	X, Y, Z int
}

// CellOf rounds a world position to its grid cell. Halves round away from
// zero.
func CellOf(x, y, z float64) Cell {
	return Cell{X: int(math.Round(x)), Y: int(math.Round(y)), Z: int(math.Round(z))}
}

// Above returns the cell one layer up.
func (c Cell) Above() Cell {
	return Cell{X: c.X, Y: c.Y, Z: c.Z + 1}
}

// Offset returns c shifted on the planar axes.
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy, Z: c.Z}
}

// Vec returns the world position of the cell centre.
func (c Cell) Vec() common.Vec3 {
	return common.V3(float64(c.X), float64(c.Y), float64(c.Z))
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// SolidTiles is the registry of impassable cells. It is filled while a map
// loads and only read once the simulation runs.
type SolidTiles struct {
	cells map[Cell]struct{}
}

func NewSolidTiles() *SolidTiles {
	return &SolidTiles{cells: make(map[Cell]struct{})}
}

// Set marks c as solid.
func (s *SolidTiles) Set(c Cell) {
	if s.cells == nil {
		s.cells = make(map[Cell]struct{})
	}
	s.cells[c] = struct{}{}
}

// IsSolid reports whether c itself is occupied. Unknown cells are passable.
func (s *SolidTiles) IsSolid(c Cell) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[c]
	return ok
}

// BlocksAt reports whether an agent standing on layer c.Z may not occupy c:
// either the cell is solid or a block sits directly above it.
func (s *SolidTiles) BlocksAt(c Cell) bool {
	return s.IsSolid(c) || s.IsSolid(c.Above())
}

// Len returns the number of solid cells.
func (s *SolidTiles) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Cells returns every solid cell in unspecified order.
func (s *SolidTiles) Cells() []Cell {
	if s == nil {
		return nil
	}
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return out
}
