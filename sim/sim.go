package sim

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/ecs/system"
	"github.com/g-brrzzn/IsoSurvivor/level"
	"github.com/g-brrzzn/IsoSurvivor/levels"
	"github.com/g-brrzzn/IsoSurvivor/prefabs"
)

const (
	DefaultLevel     = "arena.json"
	defaultGenWidth  = 40
	defaultGenHeight = 40
)

// Config selects the starting map and the random seed.
type Config struct {
	// Level is an embedded level name or a path to a level file on disk.
	Level string
	// Generate builds a procedural arena instead of loading Level.
	Generate bool
	Width    int
	Height   int
	Seed     int64
	Debug    bool
}

// Sim owns one simulated world and steps it at a caller-chosen dt.
type Sim struct {
	cfg      Config
	specs    *prefabs.Specs
	world    *ecs.World
	env      *system.Env
	pipeline *system.Pipeline
	player   ecs.Entity

	pending *levels.Trigger
	draw    []Sprite
}

// New loads the prefab tables and the starting map and spawns the player
// with the first batch of agents.
func New(cfg Config) (*Sim, error) {
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return NewWithSpecs(cfg, specs)
}

// NewWithSpecs is New with caller-provided tables.
func NewWithSpecs(cfg Config, specs *prefabs.Specs) (*Sim, error) {
	if specs == nil {
		return nil, fmt.Errorf("sim: nil specs")
	}
	s := &Sim{cfg: cfg, specs: specs}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sim) reset() error {
	m, err := s.startMap()
	if err != nil {
		return err
	}

	s.world = ecs.NewWorld()
	s.env = system.NewEnv(s.specs, m, rand.New(rand.NewSource(s.cfg.Seed)))
	s.env.Debug = s.cfg.Debug
	s.pipeline = system.NewPipeline(s.env)
	s.pipeline.Stats.OnEvent = s.onEvent
	s.pipeline.Install(s.world)
	s.pending = nil

	s.player, err = system.SpawnPlayer(s.world, s.env, m.Spawn)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	s.pipeline.Trigger.Reset(s.triggerAt(m, m.Spawn))
	s.spawnInitial()
	return nil
}

// Restart rebuilds the world from the starting configuration.
func (s *Sim) Restart() error {
	return s.reset()
}

func (s *Sim) startMap() (*level.Map, error) {
	if s.cfg.Generate {
		w, h := s.cfg.Width, s.cfg.Height
		if w <= 0 {
			w = defaultGenWidth
		}
		if h <= 0 {
			h = defaultGenHeight
		}
		return level.Generate(w, h, s.cfg.Seed), nil
	}
	name := s.cfg.Level
	if name == "" {
		name = DefaultLevel
	}
	return loadMap(name)
}

// loadMap prefers a file on disk and falls back to the embedded levels.
func loadMap(name string) (*level.Map, error) {
	if _, err := os.Stat(name); err == nil {
		return level.Load(name)
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return level.LoadFromFS(name)
}

func (s *Sim) spawnInitial() {
	ss := s.specs.Sim
	n := system.SpawnInitial(s.world, s.env, ss.InitialAgentsPerLevel, ss.InitialMinDistance)
	if s.cfg.Debug {
		log.Printf("sim: %s: placed %d initial agents", s.env.Map.Name, n)
	}
}

func (s *Sim) onEvent(evt ecs.Event) {
	if evt.Kind != ecs.EventTriggerEntered {
		return
	}
	if tr, ok := evt.Data.(levels.Trigger); ok && tr.TargetMap != "" {
		s.pending = &tr
	}
}

// Step advances the simulation by dt seconds. A trigger entered during the
// tick moves the player to the target map afterwards.
func (s *Sim) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.env.Dt = dt
	s.env.Tick++
	s.env.Time += dt
	s.world.Update()

	if s.pending != nil {
		tr := *s.pending
		s.pending = nil
		if err := s.travel(tr); err != nil {
			log.Printf("sim: trigger %s: %v", tr.ID, err)
		}
	}
}

// travel swaps the map for the trigger's target. Agents, projectiles and
// gems belong to the old map and are discarded.
func (s *Sim) travel(tr levels.Trigger) error {
	m, err := loadMap(tr.TargetMap)
	if err != nil {
		return err
	}

	var doomed []ecs.Entity
	ecs.ForEach(s.world, component.AgentComponent.Kind(), func(e ecs.Entity, _ *component.Agent) {
		doomed = append(doomed, e)
	})
	ecs.ForEach(s.world, component.ProjectileComponent.Kind(), func(e ecs.Entity, _ *component.Projectile) {
		doomed = append(doomed, e)
	})
	ecs.ForEach(s.world, component.PickupComponent.Kind(), func(e ecs.Entity, _ *component.Pickup) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		ecs.DestroyEntity(s.world, e)
	}

	to := common.V3(tr.TargetPosition.X, tr.TargetPosition.Y, tr.TargetPosition.Z)
	if t, ok := ecs.Get(s.world, s.player, component.TransformComponent.Kind()); ok {
		t.X, t.Y, t.Z = to.X, to.Y, to.Z
	}
	if v, ok := ecs.Get(s.world, s.player, component.VelocityComponent.Kind()); ok {
		v.Value.X, v.Value.Y = 0, 0
	}

	s.env.SetMap(m)
	s.pipeline.Trigger.Reset(s.triggerAt(m, to))
	s.spawnInitial()
	if s.cfg.Debug {
		log.Printf("sim: entered %s at (%.1f,%.1f)", m.Name, to.X, to.Y)
	}
	return nil
}

func (s *Sim) triggerAt(m *level.Map, p common.Vec3) string {
	if tr, ok := m.TriggerAt(p.X, p.Y); ok {
		return tr.ID
	}
	return ""
}

// SetInput sets the player's movement direction. It need not be normalised.
func (s *Sim) SetInput(x, y float64) {
	if in, ok := ecs.Get(s.world, s.player, component.PlayerInputComponent.Kind()); ok {
		in.MoveX, in.MoveY = x, y
	}
}

// ReloadSpecs re-reads the prefab tables and drops the cached steering
// scripts. The grid cell size and path budget keep their startup values.
func (s *Sim) ReloadSpecs() error {
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		return fmt.Errorf("sim: reload: %w", err)
	}
	if err := s.acceptReload(specs); err != nil {
		return err
	}
	*s.specs = *specs
	s.pipeline.AI.ResetScripts()
	return nil
}

// acceptReload pins the startup grid cell size and path budget on the new
// tables and checks them against the grid that is actually running.
func (s *Sim) acceptReload(specs *prefabs.Specs) error {
	specs.Sim.GridCellSize = s.env.Grid.CellSize()
	specs.Sim.MaxPathNodes = s.specs.Sim.MaxPathNodes
	if err := specs.Validate(); err != nil {
		return fmt.Errorf("sim: reload: %w", err)
	}
	return nil
}

func (s *Sim) Stats() system.Stats {
	return s.env.Stats
}

func (s *Sim) Map() *level.Map {
	return s.env.Map
}

func (s *Sim) Projection() common.Projection {
	return s.env.Projection()
}

func (s *Sim) World() *ecs.World {
	return s.world
}

// PlayerPosition returns the player's world position.
func (s *Sim) PlayerPosition() common.Vec3 {
	if t, ok := ecs.Get(s.world, s.player, component.TransformComponent.Kind()); ok {
		return t.Pos()
	}
	return common.Vec3{}
}
