package system

import (
	"github.com/g-brrzzn/IsoSurvivor/ecs"
)

// TriggerSystem publishes EventTriggerEntered when the player steps into a
// map trigger. Standing inside does not fire again until the player leaves.
type TriggerSystem struct {
	env    *Env
	inside string
}

func NewTriggerSystem(env *Env) *TriggerSystem {
	return &TriggerSystem{env: env}
}

// Reset forgets the trigger the player currently stands in, for use after a
// map change.
func (s *TriggerSystem) Reset(inside string) {
	s.inside = inside
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || s.env.Map == nil || w == nil {
		return
	}
	e, p, pt, ok := playerState(w)
	if !ok || p.Life <= 0 {
		return
	}
	tr, ok := s.env.Map.TriggerAt(pt.X, pt.Y)
	if !ok {
		s.inside = ""
		return
	}
	if tr.ID == s.inside {
		return
	}
	s.inside = tr.ID
	w.Events().Push(ecs.Event{Kind: ecs.EventTriggerEntered, Entity: e, X: pt.X, Y: pt.Y, Data: tr})
}
