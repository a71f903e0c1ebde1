package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vec3 is a world position: planar X/Y in tile units, Z as the layer height.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Planar drops the height component.
func (v Vec3) Planar() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// WithPlanar replaces X/Y and keeps Z.
func (v Vec3) WithPlanar(p cp.Vector) Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: v.Z}
}

// PlanarDistance ignores Z.
func (v Vec3) PlanarDistance(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// SafeNormalize returns the unit vector of v, or the zero vector when v has no
// length.
func SafeNormalize(v cp.Vector) cp.Vector {
	l := v.Length()
	if l < 1e-9 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}
