package system

import (
	"log"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/level"
	"github.com/jakecoffman/cp"
)

// AISystem computes the desired velocity of every agent: path following or
// direct pursuit of the player, blended with separation from neighbours.
// Agents under heavy knockback do not steer.
type AISystem struct {
	env     *Env
	scripts map[string]*steeringScript
	near    []ecs.Entity
}

func NewAISystem(env *Env) *AISystem {
	return &AISystem{env: env, scripts: map[string]*steeringScript{}}
}

// ResetScripts drops compiled steering scripts so the next tick reloads them.
func (s *AISystem) ResetScripts() {
	if s == nil {
		return
	}
	s.scripts = map[string]*steeringScript{}
}

func (s *AISystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	_, player, pt, ok := playerState(w)
	if !ok || player.Life <= 0 {
		ecs.ForEach2(w, component.AITagComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, _ *component.AITag, vel *component.Velocity) {
			vel.Value = cp.Vector{}
		})
		return
	}
	target := pt.Pos()
	res := s.env.resolver()

	ecs.ForEach3(w, component.AITagComponent.Kind(), component.AgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.AITag, agent *component.Agent, t *component.Transform) {
		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok || vel == nil {
			return
		}
		if agent.Removed {
			vel.Value = cp.Vector{}
			return
		}
		if kb, ok := ecs.Get(w, e, component.KnockbackComponent.Kind()); ok && kb.Value.LengthSq() > res.KnockbackThreshold {
			vel.Value = cp.Vector{}
			return
		}

		steer, _ := ecs.Get(w, e, component.SteeringComponent.Kind())
		pf, _ := ecs.Get(w, e, component.PathfindingComponent.Kind())
		out := s.steering(agent, steer, pf, t, target)

		toTarget := common.SafeNormalize(target.Planar().Sub(t.Planar()))
		var desired cp.Vector
		switch out.Mode {
		case component.SteerHold:
		case component.SteerDirect:
			desired = toTarget
		default:
			desired = s.followPath(w, e, t, target, pf, toTarget)
		}

		sep := s.separation(w, e, t, res.SeparationRadius)
		blend := desired.Mult(out.PathWeight).Add(sep.Mult(out.SeparationWeight))
		vel.Value = common.SafeNormalize(blend).Mult(agent.Speed)
	})
}

func (s *AISystem) steering(agent *component.Agent, steer *component.Steering, pf *component.Pathfinding, t *component.Transform, target common.Vec3) steeringOutput {
	res := s.env.resolver()
	out := steeringOutput{
		Mode:             component.SteerPath,
		PathWeight:       res.PathWeight,
		SeparationWeight: res.SeparationWeight,
	}
	if steer == nil {
		return out
	}
	if steer.Mode != "" {
		out.Mode = steer.Mode
	}
	if steer.PathWeight > 0 {
		out.PathWeight = steer.PathWeight
	}
	if steer.SeparationWeight > 0 {
		out.SeparationWeight = steer.SeparationWeight
	}
	if steer.Script == "" {
		return out
	}

	script := s.script(steer.Script)
	if script == nil {
		return out
	}
	lifeRatio := 1.0
	if agent.MaxLife > 0 {
		lifeRatio = float64(agent.Life) / float64(agent.MaxLife)
	}
	in := steeringInput{
		Dist:      t.Pos().PlanarDistance(target),
		LifeRatio: lifeRatio,
		HasPath:   pf != nil && len(pf.Path) > 0,
	}
	scripted, err := script.run(in, out)
	if err != nil {
		log.Printf("ai: script %s: %v", steer.Script, err)
		s.scripts[steer.Script] = nil
		return out
	}
	return scripted
}

// script returns the compiled policy for path. Failures are cached as nil
// so a broken script is reported once per reload.
func (s *AISystem) script(path string) *steeringScript {
	if s.scripts == nil {
		s.scripts = map[string]*steeringScript{}
	}
	if sc, ok := s.scripts[path]; ok {
		return sc
	}
	sc, err := compileSteeringScript(path)
	if err != nil {
		log.Printf("%v", err)
		sc = nil
	}
	s.scripts[path] = sc
	return sc
}

// followPath steers towards the next waypoint, replanning when the timer
// runs out. With no usable path it falls back to direct pursuit.
func (s *AISystem) followPath(w *ecs.World, e ecs.Entity, t *component.Transform, target common.Vec3, pf *component.Pathfinding, fallback cp.Vector) cp.Vector {
	if pf == nil {
		return fallback
	}
	res := s.env.resolver()
	interval := res.ReplanInterval
	if pf.Interval > 0 {
		interval = pf.Interval
	}

	pf.Timer -= s.env.Dt
	if pf.Timer <= 0 {
		pf.Timer = interval
		s.replan(w, e, t, target, pf)
	}

	for len(pf.Path) > 0 {
		wp := pf.Path[0]
		d := cp.Vector{X: float64(wp.X), Y: float64(wp.Y)}.Sub(t.Planar())
		if d.Length() >= res.ReachedThreshold {
			return common.SafeNormalize(d)
		}
		pf.Path = pf.Path[1:]
		if len(pf.Path) == 0 {
			pf.Timer = 0
		}
	}
	return fallback
}

func (s *AISystem) replan(w *ecs.World, e ecs.Entity, t *component.Transform, target common.Vec3, pf *component.Pathfinding) {
	goal := level.CellOf(target.X, target.Y, t.Z)
	pf.Target = goal
	if s.env.blocked(goal) {
		pf.Path = nil
		return
	}

	path, ok := s.env.Finder.FindPath(t.Pos(), target)
	pf.Planned++
	s.env.Stats.PathsPlanned++
	if !ok {
		pf.Path = nil
		pf.Failed++
		s.env.Stats.PathsFailed++
		w.Events().Push(ecs.Event{Kind: ecs.EventPathNotFound, Entity: e, X: t.X, Y: t.Y, Data: goal})
		return
	}
	pf.Path = path
}

// separation averages the push away from neighbours inside radius, each
// weighted by 1 - d/radius, and returns its direction.
func (s *AISystem) separation(w *ecs.World, self ecs.Entity, t *component.Transform, radius float64) cp.Vector {
	if radius <= 0 {
		return cp.Vector{}
	}
	s.near = s.env.Grid.AppendNear(s.near[:0], t.X, t.Y)

	var sum cp.Vector
	n := 0
	for _, other := range s.near {
		if other == self {
			continue
		}
		agent, ok := ecs.Get(w, other, component.AgentComponent.Kind())
		if !ok || agent.Removed {
			continue
		}
		ot, ok := ecs.Get(w, other, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		diff := t.Planar().Sub(ot.Planar())
		d := diff.Length()
		if d <= 0 || d >= radius {
			continue
		}
		sum = sum.Add(diff.Mult((1 - d/radius) / d))
		n++
	}
	if n == 0 {
		return cp.Vector{}
	}
	return common.SafeNormalize(sum.Mult(1 / float64(n)))
}
