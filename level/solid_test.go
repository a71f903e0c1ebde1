package level

import "testing"

func TestCellOfRounds(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		want    Cell
	}{
		{name: "exact", x: 3, y: 4, z: 0, want: Cell{3, 4, 0}},
		{name: "below half", x: 2.49, y: 0.2, z: 0, want: Cell{2, 0, 0}},
		{name: "half rounds away from zero", x: 2.5, y: -0.5, z: 0, want: Cell{3, -1, 0}},
		{name: "negative", x: -1.2, y: -3.7, z: 1, want: Cell{-1, -4, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellOf(tt.x, tt.y, tt.z); got != tt.want {
				t.Fatalf("CellOf(%v,%v,%v) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
			}
		})
	}
}

func TestSolidTilesBlocksAt(t *testing.T) {
	s := NewSolidTiles()
	s.Set(Cell{2, 2, 0})
	s.Set(Cell{4, 4, 1})

	if !s.IsSolid(Cell{2, 2, 0}) {
		t.Fatalf("expected (2,2,0) solid")
	}
	if s.IsSolid(Cell{4, 4, 0}) {
		t.Fatalf("expected (4,4,0) not solid itself")
	}
	if !s.BlocksAt(Cell{4, 4, 0}) {
		t.Fatalf("expected block above (4,4,0) to block")
	}
	if s.BlocksAt(Cell{0, 0, 0}) {
		t.Fatalf("unknown cell should be passable")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 solid cells, got %d", s.Len())
	}
}

func TestSolidTilesNilIsPassable(t *testing.T) {
	var s *SolidTiles
	if s.BlocksAt(Cell{1, 1, 0}) || s.Len() != 0 || s.Cells() != nil {
		t.Fatalf("nil registry should be empty and passable")
	}
}
