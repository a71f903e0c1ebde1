package system

import (
	"math"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
)

const (
	gemAcceleration = 15.0
	gemMaxSpeed     = 600.0
	gemSpeedScale   = 0.05
)

// PickupSystem pulls experience gems towards the player once inside the
// magnet range and credits them on contact.
type PickupSystem struct {
	env *Env
}

func NewPickupSystem(env *Env) *PickupSystem {
	return &PickupSystem{env: env}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	_, p, pt, ok := playerState(w)
	if !ok || p.Life <= 0 {
		return
	}
	dt := s.env.Dt
	ps := s.env.Specs.Sim.Player

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, g *component.Pickup, t *component.Transform) {
		if g.Removed {
			return
		}
		to := pt.Planar().Sub(t.Planar())
		if !g.Magnetized && to.Length() < p.MagnetRange {
			g.Magnetized = true
		}
		if !g.Magnetized {
			return
		}

		g.Speed = math.Min(g.Speed+gemAcceleration*dt*60, gemMaxSpeed)
		step := g.Speed * dt * gemSpeedScale
		if dist := to.Length(); step > dist {
			step = dist
		}
		t.SetPlanar(t.Planar().Add(common.SafeNormalize(to).Mult(step)))

		if pt.Planar().Distance(t.Planar()) < ps.PickupRadius {
			g.Removed = true
			addExperience(p, g.Value, ps.XPPerLevel)
		}
	})
}

// addExperience credits xp and levels the player up; every level needs
// perLevel times the current level.
func addExperience(p *component.Player, xp, perLevel int) bool {
	p.XP += xp
	if perLevel <= 0 {
		return false
	}
	leveled := false
	for p.XP >= p.Level*perLevel {
		p.XP -= p.Level * perLevel
		p.Level++
		leveled = true
	}
	return leveled
}
