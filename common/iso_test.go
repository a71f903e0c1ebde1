package common

import (
	"math"
	"testing"
)

func TestWorldToScreen(t *testing.T) {
	p := DefaultProjection()
	tests := []struct {
		name   string
		pos    Vec3
		sx, sy float64
	}{
		{name: "origin", pos: V3(0, 0, 0), sx: 0, sy: 0},
		{name: "x axis", pos: V3(1, 0, 0), sx: 32, sy: 16},
		{name: "y axis", pos: V3(0, 1, 0), sx: -32, sy: 16},
		{name: "raised", pos: V3(2, 2, 1), sx: 0, sy: 64 - 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := p.WorldToScreen(tt.pos)
			if sx != tt.sx || sy != tt.sy {
				t.Fatalf("WorldToScreen(%v) = (%v,%v), want (%v,%v)", tt.pos, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestScreenRoundTrip(t *testing.T) {
	p := DefaultProjection()
	for _, pos := range []Vec3{V3(0, 0, 0), V3(3.25, 7.5, 0), V3(-4, 12.1, 0), V3(99, 0.01, 0)} {
		sx, sy := p.WorldToScreen(pos)
		x, y := p.ScreenToWorld(sx, sy)
		if math.Abs(x-pos.X) > 1e-9 || math.Abs(y-pos.Y) > 1e-9 {
			t.Fatalf("round trip %v -> (%v,%v)", pos, x, y)
		}
	}
}

func TestDepthMonotonic(t *testing.T) {
	p := DefaultProjection()
	prev := p.Depth(V3(0, 0, 0))
	if prev != 1 {
		t.Fatalf("depth at origin = %v, want 1", prev)
	}
	for s := 1; s <= 200; s++ {
		d := p.Depth(V3(float64(s)/2, float64(s)/2, 0))
		if d >= prev {
			t.Fatalf("depth not decreasing at sum %d: %v >= %v", s, d, prev)
		}
		prev = d
	}
	if d := p.Depth(V3(500, 500, 0)); d != 0 {
		t.Fatalf("depth beyond extent = %v, want 0", d)
	}
	if p.Depth(V3(3, 4, 0)) != p.Depth(V3(3, 4, 5)) {
		t.Fatalf("depth should ignore z")
	}
}

type drawItem struct {
	pos Vec3
	tag string
}

func (d drawItem) WorldPosition() Vec3 { return d.pos }

func TestDepthSortStable(t *testing.T) {
	items := []drawItem{
		{pos: V3(5, 5, 0), tag: "near"},
		{pos: V3(1, 2, 0), tag: "tie-a"},
		{pos: V3(0, 0, 0), tag: "far"},
		{pos: V3(2, 1, 1), tag: "tie-b"},
	}
	DepthSort(DefaultProjection(), items)
	want := []string{"far", "tie-a", "tie-b", "near"}
	for i, tag := range want {
		if items[i].tag != tag {
			t.Fatalf("order[%d] = %s, want %s", i, items[i].tag, tag)
		}
	}
}
