package system

import (
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/level"
)

// ProjectileSystem advances projectiles and retires them when they expire or
// fly into a solid cell. Explosive shots detonate where they stop.
type ProjectileSystem struct {
	env *Env
}

func NewProjectileSystem(env *Env) *ProjectileSystem {
	return &ProjectileSystem{env: env}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	dt := s.env.Dt
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		if p.Removed {
			return
		}
		t.SetPlanar(t.Planar().Add(p.Dir.Mult(p.Speed * dt)))
		p.Lifetime -= dt
		if p.Lifetime > 0 && !s.env.blocked(level.CellOf(t.X, t.Y, t.Z)) {
			return
		}
		p.Removed = true
		if p.ExplosionRadius > 0 {
			explode(w, s.env, e, t, p)
		}
	})
}
