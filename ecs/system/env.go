package system

import (
	"math/rand"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/level"
	"github.com/g-brrzzn/IsoSurvivor/pathfind"
	"github.com/g-brrzzn/IsoSurvivor/prefabs"
	"github.com/g-brrzzn/IsoSurvivor/spatial"
)

// Env is the state shared by every simulation system for one world: the
// tuning tables, the static level, the per-tick broad phase and the clock.
type Env struct {
	Specs *prefabs.Specs
	Map   *level.Map
	// Blocks answers collision and path queries. It is usually Map.
	Blocks pathfind.Grid
	Grid   *spatial.Grid
	Finder *pathfind.Finder
	Rand   *rand.Rand

	Dt    float64
	Time  float64
	Tick  int
	Debug bool

	Stats Stats
}

// Stats is a snapshot of counters maintained by the systems.
type Stats struct {
	Tick         int
	Time         float64
	Wave         int
	Agents       int
	Projectiles  int
	Pickups      int
	Spawned      int
	Kills        int
	PathsPlanned int
	PathsFailed  int
	Explosions   int
	PlayerHits   int
	PlayerLife   int
	PlayerXP     int
	PlayerLevel  int
	GameOver     bool
}

// NewEnv builds an environment over m. A nil rng is seeded with 1.
func NewEnv(specs *prefabs.Specs, m *level.Map, rng *rand.Rand) *Env {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	env := &Env{
		Specs: specs,
		Grid:  spatial.NewGrid(specs.Sim.GridCellSize),
		Rand:  rng,
	}
	env.Finder = pathfind.NewFinder(nil, specs.Sim.MaxPathNodes)
	env.SetMap(m)
	return env
}

// SetMap switches the static level used for collision and pathing.
func (env *Env) SetMap(m *level.Map) {
	env.Map = m
	if m != nil {
		env.Blocks = m
	} else {
		env.Blocks = level.NewSolidTiles()
	}
	env.Finder.SetGrid(env.Blocks)
}

func (env *Env) blocked(c level.Cell) bool {
	return env.Blocks != nil && env.Blocks.BlocksAt(c)
}

func (env *Env) resolver() prefabs.ResolverSpec {
	return env.Specs.Sim.Resolver
}

// Projection returns the configured projection with its depth extent taken
// from the active map, so depth keeps decreasing across the whole map.
func (env *Env) Projection() common.Projection {
	p := env.Specs.Sim.Projection
	if env.Map != nil {
		p.WorldWidth = float64(env.Map.Width)
		p.WorldHeight = float64(env.Map.Height)
	}
	return p
}
