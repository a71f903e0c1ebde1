package system

import "github.com/g-brrzzn/IsoSurvivor/ecs"

// Pipeline is the per-tick system order: broad phase, intent, movement,
// combat, sweep, spawning, projection and finally bookkeeping.
type Pipeline struct {
	Spatial    *SpatialIndexSystem
	Player     *PlayerSystem
	AI         *AISystem
	Movement   *MovementSystem
	Trigger    *TriggerSystem
	Weapon     *WeaponSystem
	Projectile *ProjectileSystem
	Combat     *CombatSystem
	Pickup     *PickupSystem
	Cleanup    *CleanupSystem
	Spawn      *SpawnSystem
	Projection *ProjectionSystem
	Stats      *StatsSystem
}

func NewPipeline(env *Env) *Pipeline {
	return &Pipeline{
		Spatial:    NewSpatialIndexSystem(env),
		Player:     NewPlayerSystem(env),
		AI:         NewAISystem(env),
		Movement:   NewMovementSystem(env),
		Trigger:    NewTriggerSystem(env),
		Weapon:     NewWeaponSystem(env),
		Projectile: NewProjectileSystem(env),
		Combat:     NewCombatSystem(env),
		Pickup:     NewPickupSystem(env),
		Cleanup:    NewCleanupSystem(env),
		Spawn:      NewSpawnSystem(env),
		Projection: NewProjectionSystem(env),
		Stats:      NewStatsSystem(env),
	}
}

func (p *Pipeline) Systems() []ecs.System {
	return []ecs.System{
		p.Spatial,
		p.Player,
		p.AI,
		p.Movement,
		p.Trigger,
		p.Weapon,
		p.Projectile,
		p.Combat,
		p.Pickup,
		p.Cleanup,
		p.Spawn,
		p.Projection,
		p.Stats,
	}
}

// Install registers the systems on w in order.
func (p *Pipeline) Install(w *ecs.World) {
	for _, s := range p.Systems() {
		w.AddSystem(s)
	}
}
