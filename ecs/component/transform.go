package component

import (
	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/jakecoffman/cp"
)

// Transform is a world position in tile units. Z is the layer the entity
// stands on.
type Transform struct {
	X float64
	Y float64
	Z float64
}

func (t *Transform) Pos() common.Vec3 {
	return common.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

func (t *Transform) Planar() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) SetPlanar(v cp.Vector) {
	t.X = v.X
	t.Y = v.Y
}

var TransformComponent = NewComponent[Transform]()
