package system

import (
	"math"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/jakecoffman/cp"
)

// WeaponSystem fires every weapon in the player's loadout at the nearest
// agent in range once its cooldown has elapsed. A weapon with no target
// stays ready.
type WeaponSystem struct {
	env  *Env
	near []ecs.Entity
}

func NewWeaponSystem(env *Env) *WeaponSystem {
	return &WeaponSystem{env: env}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	e, p, pt, ok := playerState(w)
	if !ok || p.Life <= 0 {
		return
	}
	loadout, ok := ecs.Get(w, e, component.LoadoutComponent.Kind())
	if !ok || loadout == nil {
		return
	}

	for i := range loadout.Weapons {
		wp := &loadout.Weapons[i]
		wp.Timer -= s.env.Dt
		if wp.Timer > 0 {
			continue
		}
		target, ok := s.nearest(w, pt.Planar(), wp.Range)
		if !ok {
			wp.Timer = 0
			continue
		}
		dir := common.SafeNormalize(target.Sub(pt.Planar()))
		if dir.LengthSq() == 0 {
			dir = cp.Vector{X: 0, Y: 1}
		}
		s.fire(w, pt.Pos(), dir, wp)
		wp.Timer = wp.Cooldown
	}
}

// nearest returns the closest live agent strictly inside rng. Ranges above
// the grid cell size may miss agents.
func (s *WeaponSystem) nearest(w *ecs.World, from cp.Vector, rng float64) (cp.Vector, bool) {
	s.near = s.env.Grid.AppendNear(s.near[:0], from.X, from.Y)
	best := math.MaxFloat64
	var at cp.Vector
	found := false
	for _, e := range s.near {
		agent, ok := ecs.Get(w, e, component.AgentComponent.Kind())
		if !ok || agent.Removed {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		d2 := t.Planar().DistanceSq(from)
		if d2 < rng*rng && d2 < best {
			best = d2
			at = t.Planar()
			found = true
		}
	}
	return at, found
}

// fire spawns Count projectiles fanned evenly across Spread radians around
// dir.
func (s *WeaponSystem) fire(w *ecs.World, from common.Vec3, dir cp.Vector, wp *component.Weapon) {
	if wp.Count <= 1 {
		spawnProjectile(w, from, dir, wp)
		return
	}
	base := math.Atan2(dir.Y, dir.X)
	for i := 0; i < wp.Count; i++ {
		frac := float64(i)/float64(wp.Count-1) - 0.5
		spawnProjectile(w, from, cp.ForAngle(base+wp.Spread*frac), wp)
	}
}
