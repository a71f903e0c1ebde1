package pathfind

import (
	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/level"
)

const (
	costStraight = 10
	costDiagonal = 14
)

// Grid answers whether an agent may stand on a cell. *level.SolidTiles and
// *level.Map both satisfy it.
type Grid interface {
	BlocksAt(c level.Cell) bool
}

type nodeState uint8

const (
	stateOpen nodeState = iota + 1
	stateClosed
)

type node struct {
	cell   level.Cell
	g, h   int
	parent int32
	state  nodeState
}

func (n *node) f() int {
	return n.g + n.h
}

// Finder runs A* over a grid. Its node arena and lookup tables are reused
// between calls, so a Finder must not be shared between goroutines.
type Finder struct {
	grid     Grid
	maxNodes int

	nodes []node
	index map[level.Cell]int32
	open  []int32

	// Expanded is the number of nodes popped by the last search.
	Expanded int
}

// NewFinder returns a finder over grid. A search that expands more than
// maxNodes nodes gives up; zero means no limit.
func NewFinder(grid Grid, maxNodes int) *Finder {
	return &Finder{
		grid:     grid,
		maxNodes: maxNodes,
		index:    make(map[level.Cell]int32),
	}
}

// SetGrid swaps the grid searched by later calls.
func (f *Finder) SetGrid(grid Grid) {
	f.grid = grid
}

// FindPath searches from the cell of start to the cell of target on the
// start's layer. The returned waypoints exclude the start cell and end with
// the target. ok is false when no path exists or the search budget ran out.
func (f *Finder) FindPath(start, target common.Vec3) ([]level.Cell, bool) {
	from := level.CellOf(start.X, start.Y, start.Z)
	to := level.CellOf(target.X, target.Y, start.Z)
	return f.FindCells(from, to)
}

// FindCells is FindPath on grid cells.
func (f *Finder) FindCells(from, to level.Cell) ([]level.Cell, bool) {
	f.Expanded = 0
	if from == to {
		return []level.Cell{}, true
	}
	if f.grid != nil && f.grid.BlocksAt(to) {
		return nil, false
	}

	f.reset()
	f.push(from, 0, heuristic(from, to), -1)

	for len(f.open) > 0 {
		cur := f.popBest()
		f.Expanded++
		if f.maxNodes > 0 && f.Expanded > f.maxNodes {
			return nil, false
		}

		n := f.nodes[cur]
		if n.cell == to {
			return f.reconstruct(cur), true
		}

		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				next := n.cell.Offset(dx, dy)
				idx, seen := f.index[next]
				if seen && f.nodes[idx].state == stateClosed {
					continue
				}
				if f.grid != nil && f.grid.BlocksAt(next) {
					f.close(next)
					continue
				}

				cost := costStraight
				if dx != 0 && dy != 0 {
					cost = costDiagonal
				}
				g := n.g + cost
				if !seen {
					f.push(next, g, heuristic(next, to), cur)
					continue
				}
				if g < f.nodes[idx].g {
					f.nodes[idx].g = g
					f.nodes[idx].parent = cur
				}
			}
		}
	}
	return nil, false
}

func (f *Finder) reset() {
	f.nodes = f.nodes[:0]
	f.open = f.open[:0]
	if f.index == nil {
		f.index = make(map[level.Cell]int32)
	}
	clear(f.index)
}

func (f *Finder) push(c level.Cell, g, h int, parent int32) {
	idx := int32(len(f.nodes))
	f.nodes = append(f.nodes, node{cell: c, g: g, h: h, parent: parent, state: stateOpen})
	f.index[c] = idx
	f.open = append(f.open, idx)
}

func (f *Finder) close(c level.Cell) {
	idx := int32(len(f.nodes))
	f.nodes = append(f.nodes, node{cell: c, parent: -1, state: stateClosed})
	f.index[c] = idx
}

// popBest removes the open node with the lowest f, preferring the lower h.
// Full ties go to the node opened first.
func (f *Finder) popBest() int32 {
	best := 0
	for i := 1; i < len(f.open); i++ {
		a := &f.nodes[f.open[i]]
		b := &f.nodes[f.open[best]]
		if a.f() < b.f() || (a.f() == b.f() && a.h < b.h) {
			best = i
		}
	}
	idx := f.open[best]
	f.open = append(f.open[:best], f.open[best+1:]...)
	f.nodes[idx].state = stateClosed
	return idx
}

func (f *Finder) reconstruct(idx int32) []level.Cell {
	var path []level.Cell
	for idx >= 0 && f.nodes[idx].parent >= 0 {
		path = append(path, f.nodes[idx].cell)
		idx = f.nodes[idx].parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// heuristic is the octile distance in path cost units.
func heuristic(a, b level.Cell) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	return costStraight*dx + (costDiagonal-costStraight)*dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
