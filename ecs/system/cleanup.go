package system

import (
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
)

// CleanupSystem destroys everything marked Removed during the tick. Agents
// that died from damage leave an experience gem worth their weight.
type CleanupSystem struct {
	env  *Env
	dead []ecs.Entity
}

func NewCleanupSystem(env *Env) *CleanupSystem {
	return &CleanupSystem{env: env}
}

func (s *CleanupSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.dead = s.dead[:0]

	ecs.ForEach2(w, component.AgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, agent *component.Agent, t *component.Transform) {
		if !agent.Removed {
			return
		}
		if agent.Life <= 0 && agent.Weight > 0 {
			spawnGem(w, t.Pos(), agent.Weight)
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventAgentKilled, Entity: e, X: t.X, Y: t.Y, Data: agent.Kind})
		s.dead = append(s.dead, e)
	})
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		if p.Removed {
			s.dead = append(s.dead, e)
		}
	})
	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, g *component.Pickup) {
		if g.Removed {
			s.dead = append(s.dead, e)
		}
	})

	for _, e := range s.dead {
		ecs.DestroyEntity(w, e)
	}
}
