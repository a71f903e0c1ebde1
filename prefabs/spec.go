package prefabs

import (
	"fmt"
	"maps"
	"slices"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/spatial"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SimSpec struct {
	Name                  string            `yaml:"name"`
	TickRate              int               `yaml:"tick_rate"`
	GridCellSize          float64           `yaml:"grid_cell_size"`
	MaxPathNodes          int               `yaml:"max_path_nodes"`
	MaxAgents             int               `yaml:"max_agents"`
	InitialAgentsPerLevel int               `yaml:"initial_agents_per_level"`
	InitialMinDistance    float64           `yaml:"initial_min_distance"`
	Projection            common.Projection `yaml:"projection"`
	Resolver              ResolverSpec      `yaml:"resolver"`
	Combat                CombatSpec        `yaml:"combat"`
	Player                PlayerSpec        `yaml:"player"`
}

type ResolverSpec struct {
	KnockbackThreshold  float64 `yaml:"knockback_threshold"`
	KnockbackFriction   float64 `yaml:"knockback_friction"`
	ReachedThreshold    float64 `yaml:"reached_threshold"`
	ReplanInterval      float64 `yaml:"replan_interval"`
	SeparationRadius    float64 `yaml:"separation_radius"`
	PathWeight          float64 `yaml:"path_weight"`
	SeparationWeight    float64 `yaml:"separation_weight"`
	CollisionHalfExtent float64 `yaml:"collision_half_extent"`
}

type CombatSpec struct {
	AgentRadius      float64 `yaml:"agent_radius"`
	ProjectileRadius float64 `yaml:"projectile_radius"`
	PlayerRadius     float64 `yaml:"player_radius"`
	ContactDamage    int     `yaml:"contact_damage"`
}

type PlayerSpec struct {
	Life            int      `yaml:"life"`
	Speed           float64  `yaml:"speed"`
	Invulnerability float64  `yaml:"invulnerability"`
	MagnetRange     float64  `yaml:"magnet_range"`
	PickupRadius    float64  `yaml:"pickup_radius"`
	XPPerLevel      int      `yaml:"xp_per_level"`
	Weapons         []string `yaml:"weapons"`
}

// DefaultSimSpec mirrors sim.yaml so a partially filled file still yields a
// usable configuration.
func DefaultSimSpec() SimSpec {
	return SimSpec{
		Name:                  "sim",
		TickRate:              60,
		GridCellSize:          8,
		MaxPathNodes:          4000,
		MaxAgents:             400,
		InitialAgentsPerLevel: 3,
		InitialMinDistance:    5,
		Projection:            common.DefaultProjection(),
		Resolver: ResolverSpec{
			KnockbackThreshold:  0.5,
			KnockbackFriction:   5,
			ReachedThreshold:    0.2,
			ReplanInterval:      0.5,
			SeparationRadius:    0.8,
			PathWeight:          0.7,
			SeparationWeight:    0.5,
			CollisionHalfExtent: 0.25,
		},
		Combat: CombatSpec{
			AgentRadius:      0.8,
			ProjectileRadius: 0.3,
			PlayerRadius:     0.6,
			ContactDamage:    1,
		},
		Player: PlayerSpec{
			Life:            5,
			Speed:           4,
			Invulnerability: 1,
			MagnetRange:     2.5,
			PickupRadius:    0.5,
			XPPerLevel:      10,
		},
	}
}

// LoadSimSpec decodes sim.yaml over the defaults.
func LoadSimSpec() (SimSpec, error) {
	spec := DefaultSimSpec()
	data, err := Load("sim.yaml")
	if err != nil {
		return spec, fmt.Errorf("prefabs: load sim.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("prefabs: unmarshal sim.yaml: %w", err)
	}
	return spec, nil
}

type AgentSpec struct {
	Kind       string  `yaml:"kind"`
	Life       int     `yaml:"life"`
	Weight     int     `yaml:"weight"`
	Speed      float64 `yaml:"speed"`
	Resistance float64 `yaml:"resistance"`
	Radius     float64 `yaml:"radius"`
	Mode       string  `yaml:"mode"`
	Script     string  `yaml:"script"`
}

type AgentsSpec struct {
	Agents []AgentSpec `yaml:"agents"`
}

// ByKind indexes the table. Later duplicates win.
func (s AgentsSpec) ByKind() map[string]AgentSpec {
	out := make(map[string]AgentSpec, len(s.Agents))
	for _, a := range s.Agents {
		out[a.Kind] = a
	}
	return out
}

type WaveSpec struct {
	Start    float64  `yaml:"start"`
	End      float64  `yaml:"end"`
	Interval float64  `yaml:"interval"`
	Kinds    []string `yaml:"kinds"`
}

type WavesSpec struct {
	SpawnMinDistance float64    `yaml:"spawn_min_distance"`
	SpawnMaxDistance float64    `yaml:"spawn_max_distance"`
	SpawnAttempts    int        `yaml:"spawn_attempts"`
	Waves            []WaveSpec `yaml:"waves"`
}

// At returns the wave active at time t.
func (s WavesSpec) At(t float64) (WaveSpec, int, bool) {
	for i, w := range s.Waves {
		if t >= w.Start && t < w.End {
			return w, i, true
		}
	}
	return WaveSpec{}, -1, false
}

type WeaponSpec struct {
	Name              string  `yaml:"name"`
	Cooldown          float64 `yaml:"cooldown"`
	Damage            int     `yaml:"damage"`
	Range             float64 `yaml:"range"`
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	Count             int     `yaml:"count"`
	Spread            float64 `yaml:"spread"`
	Pierce            int     `yaml:"pierce"`
	Lifetime          float64 `yaml:"lifetime"`
	Knockback         float64 `yaml:"knockback"`
	ExplosionRadius   float64 `yaml:"explosion_radius"`
	ExplosionStrength float64 `yaml:"explosion_strength"`
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

func (s WeaponsSpec) ByName() map[string]WeaponSpec {
	out := make(map[string]WeaponSpec, len(s.Weapons))
	for _, w := range s.Weapons {
		out[w.Name] = w
	}
	return out
}

// Specs bundles every tuning table the simulation reads.
type Specs struct {
	Sim     SimSpec
	Agents  map[string]AgentSpec
	Waves   WavesSpec
	Weapons map[string]WeaponSpec
}

func LoadSpecs() (*Specs, error) {
	sim, err := LoadSimSpec()
	if err != nil {
		return nil, err
	}
	agents, err := LoadSpec[AgentsSpec]("agents.yaml")
	if err != nil {
		return nil, err
	}
	waves, err := LoadSpec[WavesSpec]("waves.yaml")
	if err != nil {
		return nil, err
	}
	weapons, err := LoadSpec[WeaponsSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	specs := &Specs{
		Sim:     sim,
		Agents:  agents.ByKind(),
		Waves:   waves,
		Weapons: weapons.ByName(),
	}
	if err := specs.Validate(); err != nil {
		return nil, err
	}
	return specs, nil
}

// Validate checks cross references between the tables.
func (s *Specs) Validate() error {
	for _, w := range s.Waves.Waves {
		for _, k := range w.Kinds {
			if _, ok := s.Agents[k]; !ok {
				return fmt.Errorf("prefabs: wave at %.0fs references unknown agent %q", w.Start, k)
			}
		}
	}
	for _, name := range s.Sim.Player.Weapons {
		if _, ok := s.Weapons[name]; !ok {
			return fmt.Errorf("prefabs: player references unknown weapon %q", name)
		}
	}
	return s.validateQueryRadii()
}

// validateQueryRadii rejects any radius looked up through the spatial grid
// that is larger than one grid cell, since neighbourhood queries only reach
// one cell beyond the query point.
func (s *Specs) validateQueryRadii() error {
	cell := s.Sim.GridCellSize
	if cell <= 0 {
		cell = spatial.DefaultCellSize
	}
	check := func(what string, r float64) error {
		if r > cell {
			return fmt.Errorf("prefabs: %s %.2f exceeds grid cell size %.2f", what, r, cell)
		}
		return nil
	}

	combat := s.Sim.Combat
	if err := check("separation radius", s.Sim.Resolver.SeparationRadius); err != nil {
		return err
	}
	agentRadius := func(r float64) error {
		if err := check("agent+projectile radius", r+combat.ProjectileRadius); err != nil {
			return err
		}
		return check("agent+player radius", r+combat.PlayerRadius)
	}
	if err := agentRadius(combat.AgentRadius); err != nil {
		return err
	}
	for _, kind := range slices.Sorted(maps.Keys(s.Agents)) {
		if r := s.Agents[kind].Radius; r > 0 {
			if err := agentRadius(r); err != nil {
				return fmt.Errorf("%w (agent %q)", err, kind)
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(s.Weapons)) {
		ws := s.Weapons[name]
		if err := check(fmt.Sprintf("weapon %q range", name), ws.Range); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("weapon %q explosion radius", name), ws.ExplosionRadius); err != nil {
			return err
		}
	}
	return nil
}
