package system

import (
	"math/rand"
	"testing"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/level"
	"github.com/g-brrzzn/IsoSurvivor/prefabs"
	"github.com/jakecoffman/cp"
)

const testDt = 1.0 / 60.0

func testSpecs() *prefabs.Specs {
	return &prefabs.Specs{
		Sim: prefabs.DefaultSimSpec(),
		Agents: map[string]prefabs.AgentSpec{
			"walker": {Kind: "walker", Life: 2, Weight: 3, Speed: 3, Mode: "path"},
			"heavy":  {Kind: "heavy", Life: 15, Weight: 25, Speed: 1.5, Resistance: 0.5, Mode: "path"},
			"holder": {Kind: "holder", Life: 1, Weight: 1, Speed: 3, Mode: "hold"},
		},
		Waves: prefabs.WavesSpec{
			SpawnMinDistance: 4,
			SpawnMaxDistance: 6,
			SpawnAttempts:    20,
			Waves:            []prefabs.WaveSpec{{Start: 0, End: 100, Interval: 1, Kinds: []string{"walker"}}},
		},
		Weapons: map[string]prefabs.WeaponSpec{},
	}
}

// newTestEnv builds an environment over a bare solid registry, so the world
// has no edges.
func newTestEnv(solid ...level.Cell) *Env {
	env := NewEnv(testSpecs(), nil, rand.New(rand.NewSource(42)))
	tiles := level.NewSolidTiles()
	for _, c := range solid {
		tiles.Set(c)
	}
	env.Blocks = tiles
	env.Finder.SetGrid(tiles)
	env.Dt = testDt
	return env
}

func mustAgent(t *testing.T, w *ecs.World, env *Env, kind string, x, y float64) ecs.Entity {
	t.Helper()
	e, err := SpawnAgent(w, env, kind, common.V3(x, y, 0))
	if err != nil {
		t.Fatalf("SpawnAgent: %v", err)
	}
	return e
}

func mustPlayer(t *testing.T, w *ecs.World, env *Env, x, y float64) ecs.Entity {
	t.Helper()
	e, err := SpawnPlayer(w, env, common.V3(x, y, 0))
	if err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func agentOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Agent {
	t.Helper()
	a, ok := ecs.Get(w, e, component.AgentComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no agent", e)
	}
	return a
}

func knockbackOf(t *testing.T, w *ecs.World, e ecs.Entity) cp.Vector {
	t.Helper()
	kb, ok := ecs.Get(w, e, component.KnockbackComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no knockback", e)
	}
	return kb.Value
}

func near(a, b cp.Vector) bool {
	return a.Distance(b) < 1e-9
}

// step advances the clock and runs systems once, in order.
func step(w *ecs.World, env *Env, systems ...ecs.System) {
	env.Tick++
	env.Time += env.Dt
	for _, s := range systems {
		s.Update(w)
	}
}
