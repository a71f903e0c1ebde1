package system

import (
	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/jakecoffman/cp"
)

// PlayerSystem turns the input direction into the player's velocity and
// counts down the invulnerability window.
type PlayerSystem struct {
	env *Env
}

func NewPlayerSystem(env *Env) *PlayerSystem {
	return &PlayerSystem{env: env}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p == nil {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok || vel == nil {
		return
	}

	if p.Invulnerable > 0 {
		p.Invulnerable -= s.env.Dt
		if p.Invulnerable < 0 {
			p.Invulnerable = 0
		}
	}

	if p.Life <= 0 {
		vel.Value = cp.Vector{}
		return
	}

	dir := cp.Vector{}
	if in, ok := ecs.Get(w, e, component.PlayerInputComponent.Kind()); ok && in != nil {
		dir = common.SafeNormalize(cp.Vector{X: in.MoveX, Y: in.MoveY})
	}
	vel.Value = dir.Mult(p.Speed)
}

// playerState returns the player entity with its stats and position.
func playerState(w *ecs.World) (ecs.Entity, *component.Player, *component.Transform, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p == nil {
		return 0, nil, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		return 0, nil, nil, false
	}
	return e, p, t, true
}
