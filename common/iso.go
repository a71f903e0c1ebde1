package common

import "sort"

// Projection maps world positions to isometric screen space.
type Projection struct {
	TileWidth    float64 `yaml:"tile_width"`
	TileHeight   float64 `yaml:"tile_height"`
	HeightFactor float64 `yaml:"height_factor"`
	WorldWidth   float64 `yaml:"world_width"`
	WorldHeight  float64 `yaml:"world_height"`
}

func DefaultProjection() Projection {
	return Projection{
		TileWidth:    64,
		TileHeight:   32,
		HeightFactor: 16,
		WorldWidth:   100,
		WorldHeight:  100,
	}
}

func (p Projection) WorldToScreen(pos Vec3) (float64, float64) {
	sx := (pos.X - pos.Y) * (p.TileWidth / 2)
	sy := (pos.X+pos.Y)*(p.TileHeight/2) - pos.Z*p.HeightFactor
	return sx, sy
}

// ScreenToWorld inverts the planar part of WorldToScreen for z = 0. Height
// cannot be recovered from a screen point.
func (p Projection) ScreenToWorld(sx, sy float64) (float64, float64) {
	a := sx / (p.TileWidth / 2)  // x - y
	b := sy / (p.TileHeight / 2) // x + y
	return (a + b) / 2, (b - a) / 2
}

// Depth is the painter's key in [0,1]: larger values are further back and
// drawn first. Height does not take part.
func (p Projection) Depth(pos Vec3) float64 {
	extent := p.WorldWidth + p.WorldHeight
	if extent <= 0 {
		return 0
	}
	return Clamp(1-(pos.X+pos.Y)/extent, 0, 1)
}

type Drawable interface {
	WorldPosition() Vec3
}

// DepthSort orders items back to front. Items with equal depth keep their
// relative order.
func DepthSort[T Drawable](p Projection, items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return p.Depth(items[i].WorldPosition()) > p.Depth(items[j].WorldPosition())
	})
}
