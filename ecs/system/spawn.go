package system

import (
	"log"
	"maps"
	"math"
	"slices"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/level"
	"github.com/jakecoffman/cp"
)

// SpawnSystem runs the timed waves from waves.yaml, placing agents on free
// cells in a ring around the player.
type SpawnSystem struct {
	env   *Env
	timer float64
	wave  int
}

func NewSpawnSystem(env *Env) *SpawnSystem {
	return &SpawnSystem{env: env, wave: -1}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || s.env == nil || w == nil {
		return
	}
	_, p, pt, ok := playerState(w)
	if !ok || p.Life <= 0 {
		return
	}
	waves := s.env.Specs.Waves
	wave, idx, ok := waves.At(s.env.Time)
	if !ok || len(wave.Kinds) == 0 {
		return
	}
	if idx != s.wave {
		s.wave = idx
		s.timer = 0
		s.env.Stats.Wave = idx + 1
		if s.env.Debug {
			log.Printf("spawn: wave %d at %.1fs", idx+1, s.env.Time)
		}
	}

	s.timer -= s.env.Dt
	if s.timer > 0 {
		return
	}
	s.timer = math.Max(wave.Interval, s.env.Dt)

	if limit := s.env.Specs.Sim.MaxAgents; limit > 0 && ecs.Count(w, component.AgentComponent.Kind()) >= limit {
		return
	}
	kind := wave.Kinds[s.env.Rand.Intn(len(wave.Kinds))]
	pos, ok := ringPoint(s.env, pt.Pos(), waves.SpawnMinDistance, waves.SpawnMaxDistance, waves.SpawnAttempts)
	if !ok {
		return
	}
	if _, err := SpawnAgent(w, s.env, kind, pos); err != nil {
		log.Printf("spawn: %v", err)
	}
}

// ringPoint picks a free cell between minDist and maxDist from center.
func ringPoint(env *Env, center common.Vec3, minDist, maxDist float64, attempts int) (common.Vec3, bool) {
	if attempts <= 0 {
		attempts = 1
	}
	if maxDist < minDist {
		maxDist = minDist
	}
	for i := 0; i < attempts; i++ {
		angle := env.Rand.Float64() * 2 * math.Pi
		dist := minDist + env.Rand.Float64()*(maxDist-minDist)
		p := center.Planar().Add(cp.ForAngle(angle).Mult(dist))
		c := level.CellOf(p.X, p.Y, center.Z)
		if env.blocked(c) {
			continue
		}
		return c.Vec(), true
	}
	return common.Vec3{}, false
}

// SpawnInitial scatters count agents of random kinds on free cells further
// than minDist from the player. It returns how many were placed.
func SpawnInitial(w *ecs.World, env *Env, count int, minDist float64) int {
	_, _, pt, ok := playerState(w)
	if !ok || env.Map == nil || count <= 0 {
		return 0
	}
	kinds := make([]string, 0, len(env.Specs.Agents))
	if wave, _, ok := env.Specs.Waves.At(0); ok {
		kinds = append(kinds, wave.Kinds...)
	}
	if len(kinds) == 0 {
		kinds = slices.Sorted(maps.Keys(env.Specs.Agents))
	}
	if len(kinds) == 0 {
		return 0
	}

	z := int(math.Round(pt.Z))
	placed := 0
	for attempt := 0; placed < count && attempt < count*50; attempt++ {
		c := level.Cell{X: env.Rand.Intn(env.Map.Width), Y: env.Rand.Intn(env.Map.Height), Z: z}
		pos := c.Vec()
		if env.blocked(c) || pos.PlanarDistance(pt.Pos()) <= minDist {
			continue
		}
		if _, err := SpawnAgent(w, env, kinds[env.Rand.Intn(len(kinds))], pos); err != nil {
			log.Printf("spawn: %v", err)
			return placed
		}
		placed++
	}
	return placed
}
