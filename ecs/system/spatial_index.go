package system

import (
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
)

// SpatialIndexSystem rebuilds the broad phase from every live agent. It runs
// first so later systems see this tick's positions.
type SpatialIndexSystem struct {
	env *Env
}

func NewSpatialIndexSystem(env *Env) *SpatialIndexSystem {
	return &SpatialIndexSystem{env: env}
}

func (s *SpatialIndexSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	grid := s.env.Grid
	grid.Clear()
	ecs.ForEach2(w, component.AgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, agent *component.Agent, t *component.Transform) {
		if agent.Removed {
			return
		}
		grid.Register(e, t.X, t.Y)
	})
}
