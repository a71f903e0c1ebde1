package system

import (
	"log"

	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
)

// StatsSystem drains the tick's events into Env.Stats and refreshes the
// population counters. OnEvent, when set, sees every event first.
type StatsSystem struct {
	env     *Env
	OnEvent func(ecs.Event)
}

func NewStatsSystem(env *Env) *StatsSystem {
	return &StatsSystem{env: env}
}

func (s *StatsSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	st := &s.env.Stats
	for _, evt := range w.Events().Drain() {
		if s.OnEvent != nil {
			s.OnEvent(evt)
		}
		switch evt.Kind {
		case ecs.EventAgentKilled:
			st.Kills++
		case ecs.EventPlayerHit:
			st.PlayerHits++
		case ecs.EventExplosion:
			st.Explosions++
		}
		if s.env.Debug {
			log.Printf("sim: tick %d %s entity=%v at (%.2f,%.2f) %v", s.env.Tick, evt.Kind, evt.Entity, evt.X, evt.Y, evt.Data)
		}
	}

	st.Tick = s.env.Tick
	st.Time = s.env.Time
	st.Agents = ecs.Count(w, component.AgentComponent.Kind())
	st.Projectiles = ecs.Count(w, component.ProjectileComponent.Kind())
	st.Pickups = ecs.Count(w, component.PickupComponent.Kind())
	if _, p, _, ok := playerState(w); ok {
		st.PlayerLife = p.Life
		st.PlayerXP = p.XP
		st.PlayerLevel = p.Level
		st.GameOver = p.Life <= 0
	}
}
