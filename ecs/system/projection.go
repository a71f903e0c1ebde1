package system

import (
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
)

// ProjectionSystem writes the screen position and draw depth of every
// renderable entity. It runs last so rendering sees final positions.
type ProjectionSystem struct {
	env *Env
}

func NewProjectionSystem(env *Env) *ProjectionSystem {
	return &ProjectionSystem{env: env}
}

func (s *ProjectionSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	proj := s.env.Projection()
	ecs.ForEach2(w, component.RenderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, r *component.Render, t *component.Transform) {
		r.SX, r.SY = proj.WorldToScreen(t.Pos())
		r.Depth = proj.Depth(t.Pos())
	})
}
