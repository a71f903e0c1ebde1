package spatial

import (
	"math"
	"math/rand"
	"testing"

	"github.com/g-brrzzn/IsoSurvivor/ecs"
)

func contains(list []ecs.Entity, e ecs.Entity) bool {
	for _, v := range list {
		if v == e {
			return true
		}
	}
	return false
}

func TestRetrieveNearIsSuperset(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrid(4)
	rng := rand.New(rand.NewSource(1))

	type placed struct {
		e    ecs.Entity
		x, y float64
	}
	var all []placed
	for i := 0; i < 300; i++ {
		p := placed{e: ecs.CreateEntity(w), x: rng.Float64()*80 - 40, y: rng.Float64()*80 - 40}
		g.Register(p.e, p.x, p.y)
		all = append(all, p)
	}
	if g.Len() != len(all) {
		t.Fatalf("Len() = %d, want %d", g.Len(), len(all))
	}

	for q := 0; q < 50; q++ {
		qx, qy := rng.Float64()*80-40, rng.Float64()*80-40
		near := g.RetrieveNear(qx, qy)
		for _, p := range all {
			if math.Hypot(p.x-qx, p.y-qy) <= g.CellSize() && !contains(near, p.e) {
				t.Fatalf("entity %v at (%.2f,%.2f) missing from query at (%.2f,%.2f)", p.e, p.x, p.y, qx, qy)
			}
		}
	}
}

func TestClearEmptiesGrid(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrid(2)
	for i := 0; i < 10; i++ {
		g.Register(ecs.CreateEntity(w), float64(i), float64(i))
	}
	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", g.Len())
	}
	for i := 0; i < 10; i++ {
		if got := g.RetrieveNear(float64(i), float64(i)); len(got) != 0 {
			t.Fatalf("expected empty result after Clear, got %v", got)
		}
	}
}

func TestNegativeCoordinatesBucketByFloor(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrid(1)
	e := ecs.CreateEntity(w)
	g.Register(e, -0.5, -0.5)
	if got := g.RetrieveNear(-1.6, -0.5); !contains(got, e) {
		t.Fatalf("expected neighbour bucket to include entity")
	}
	if got := g.RetrieveNear(1.2, -0.5); contains(got, e) {
		t.Fatalf("entity two buckets away should not be returned")
	}
}

func TestDefaultCellSize(t *testing.T) {
	if g := NewGrid(0); g.CellSize() != DefaultCellSize {
		t.Fatalf("CellSize() = %v, want %v", g.CellSize(), DefaultCellSize)
	}
}

func TestAppendNearReusesBuffer(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrid(5)
	a, b := ecs.CreateEntity(w), ecs.CreateEntity(w)
	g.Register(a, 1, 1)
	g.Register(b, 2, 2)
	buf := make([]ecs.Entity, 0, 8)
	buf = g.AppendNear(buf[:0], 0, 0)
	if len(buf) != 2 || cap(buf) != 8 {
		t.Fatalf("AppendNear len=%d cap=%d", len(buf), cap(buf))
	}
}
