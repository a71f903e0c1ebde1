package system

import (
	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/spatial"
	"github.com/jakecoffman/cp"
)

// ApplyKnockback adds force to the accumulator of e, reduced by the agent's
// resistance. It returns false when e cannot be knocked back.
func ApplyKnockback(w *ecs.World, e ecs.Entity, force cp.Vector) bool {
	kb, ok := ecs.Get(w, e, component.KnockbackComponent.Kind())
	if !ok || kb == nil {
		return false
	}
	resistance := 0.0
	if agent, ok := ecs.Get(w, e, component.AgentComponent.Kind()); ok && agent != nil {
		if agent.Removed {
			return false
		}
		resistance = common.Clamp(agent.Resistance, 0, 1)
	}
	kb.Value = kb.Value.Add(force.Mult(1 - resistance))
	return true
}

// ApplyAreaImpulse pushes every live agent within radius of center away from
// it, scaled by 1 - d/radius. An agent exactly on the centre is pushed
// towards -Y. radius must not exceed the grid cell size. It returns the
// number of agents affected.
func ApplyAreaImpulse(w *ecs.World, grid *spatial.Grid, center cp.Vector, radius, strength float64) int {
	if w == nil || grid == nil || radius <= 0 {
		return 0
	}
	affected := 0
	for _, e := range grid.RetrieveNear(center.X, center.Y) {
		agent, ok := ecs.Get(w, e, component.AgentComponent.Kind())
		if !ok || agent == nil || agent.Removed {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok || t == nil {
			continue
		}

		diff := t.Planar().Sub(center)
		d := diff.Length()
		if d >= radius {
			continue
		}
		dir := cp.Vector{X: 0, Y: -1}
		if d > 1e-6 {
			dir = diff.Mult(1 / d)
		}
		if ApplyKnockback(w, e, dir.Mult(strength*(1-d/radius))) {
			affected++
		}
	}
	return affected
}

// Damage subtracts amount from the agent's life and marks it for removal
// once life is gone. It reports whether this call killed the agent.
func Damage(w *ecs.World, e ecs.Entity, amount int) bool {
	agent, ok := ecs.Get(w, e, component.AgentComponent.Kind())
	if !ok || agent == nil || agent.Removed {
		return false
	}
	agent.Life -= amount
	if agent.Life <= 0 {
		agent.Removed = true
		return true
	}
	return false
}

// decayKnockback moves kb towards zero by friction*dt of its length. The
// factor is clamped so a long frame never reverses the vector.
func decayKnockback(kb cp.Vector, friction, dt float64) cp.Vector {
	return kb.Mult(1 - common.Clamp(friction*dt, 0, 1))
}
