package system

import (
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
)

// CombatSystem resolves projectile hits on agents and agent contact with the
// player. All lookups go through the spatial grid.
type CombatSystem struct {
	env  *Env
	near []ecs.Entity
}

func NewCombatSystem(env *Env) *CombatSystem {
	return &CombatSystem{env: env}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	s.projectileHits(w)
	s.contactHits(w)
}

func (s *CombatSystem) projectileHits(w *ecs.World) {
	projR := s.env.Specs.Sim.Combat.ProjectileRadius
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(pe ecs.Entity, p *component.Projectile, pt *component.Transform) {
		if p.Removed {
			return
		}
		s.near = s.env.Grid.AppendNear(s.near[:0], pt.X, pt.Y)
		for _, e := range s.near {
			agent, ok := ecs.Get(w, e, component.AgentComponent.Kind())
			if !ok || agent.Removed || p.HasHit(uint64(e)) {
				continue
			}
			at, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				continue
			}
			r := agent.Radius + projR
			if at.Planar().DistanceSq(pt.Planar()) >= r*r {
				continue
			}

			p.Hits = append(p.Hits, uint64(e))
			if p.ExplosionRadius > 0 {
				p.Removed = true
				explode(w, s.env, pe, pt, p)
				return
			}
			Damage(w, e, p.Damage)
			ApplyKnockback(w, e, p.Dir.Mult(p.Knockback))
			if p.Pierce > 0 {
				p.Pierce--
				continue
			}
			p.Removed = true
			return
		}
	})
}

// contactHits kills every agent touching the player. The player loses life
// unless still invulnerable from an earlier hit.
func (s *CombatSystem) contactHits(w *ecs.World) {
	pe, p, pt, ok := playerState(w)
	if !ok || p.Life <= 0 {
		return
	}
	combat := s.env.Specs.Sim.Combat
	s.near = s.env.Grid.AppendNear(s.near[:0], pt.X, pt.Y)
	for _, e := range s.near {
		agent, ok := ecs.Get(w, e, component.AgentComponent.Kind())
		if !ok || agent.Removed {
			continue
		}
		at, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		r := agent.Radius + combat.PlayerRadius
		if at.Planar().DistanceSq(pt.Planar()) >= r*r {
			continue
		}

		agent.Removed = true
		if p.Invulnerable > 0 {
			continue
		}
		p.Life -= combat.ContactDamage
		p.Invulnerable = p.InvulnerableFor
		w.Events().Push(ecs.Event{Kind: ecs.EventPlayerHit, Entity: pe, X: pt.X, Y: pt.Y, Data: agent.Kind})
		if p.Life <= 0 {
			return
		}
	}
}

// explode damages and pushes every agent in the blast radius.
func explode(w *ecs.World, env *Env, e ecs.Entity, t *component.Transform, p *component.Projectile) {
	center := t.Planar()
	for _, other := range env.Grid.RetrieveNear(center.X, center.Y) {
		ot, ok := ecs.Get(w, other, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if ot.Planar().Distance(center) < p.ExplosionRadius {
			Damage(w, other, p.Damage)
		}
	}
	ApplyAreaImpulse(w, env.Grid, center, p.ExplosionRadius, p.ExplosionStrength)
	w.Events().Push(ecs.Event{Kind: ecs.EventExplosion, Entity: e, X: center.X, Y: center.Y, Data: p.ExplosionRadius})
}
