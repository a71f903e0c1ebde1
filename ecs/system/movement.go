package system

import (
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/level"
	"github.com/jakecoffman/cp"
)

// MovementSystem decays knockback and integrates steering plus knockback one
// axis at a time, so an entity blocked on one axis still slides along the
// other.
type MovementSystem struct {
	env *Env
}

func NewMovementSystem(env *Env) *MovementSystem {
	return &MovementSystem{env: env}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	res := s.env.resolver()
	dt := s.env.Dt

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, vel *component.Velocity) {
		if agent, ok := ecs.Get(w, e, component.AgentComponent.Kind()); ok && agent.Removed {
			return
		}

		move := vel.Value
		if kb, ok := ecs.Get(w, e, component.KnockbackComponent.Kind()); ok {
			kb.Value = decayKnockback(kb.Value, res.KnockbackFriction, dt)
			move = move.Add(kb.Value)
		}
		s.integrate(t, move.Mult(dt), res.CollisionHalfExtent)
	})
}

func (s *MovementSystem) integrate(t *component.Transform, delta cp.Vector, halfExtent float64) {
	if delta.X != 0 {
		if nx := t.X + delta.X; !s.collides(nx, t.Y, t.Z, halfExtent) {
			t.X = nx
		}
	}
	if delta.Y != 0 {
		if ny := t.Y + delta.Y; !s.collides(t.X, ny, t.Z, halfExtent) {
			t.Y = ny
		}
	}
}

// collides tests the four corners of the collision box centred on (x, y)
// against the solid registry at the entity's layer.
func (s *MovementSystem) collides(x, y, z, halfExtent float64) bool {
	bb := cp.NewBBForExtents(cp.Vector{X: x, Y: y}, halfExtent, halfExtent)
	corners := [4]cp.Vector{
		{X: bb.L, Y: bb.B},
		{X: bb.R, Y: bb.B},
		{X: bb.L, Y: bb.T},
		{X: bb.R, Y: bb.T},
	}
	for _, c := range corners {
		if s.env.blocked(level.CellOf(c.X, c.Y, z)) {
			return true
		}
	}
	return false
}
