package system

import (
	"fmt"

	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/prefabs"
	"github.com/jakecoffman/cp"
)

// SpawnAgent creates an agent of the given kind at pos.
func SpawnAgent(w *ecs.World, env *Env, kind string, pos common.Vec3) (ecs.Entity, error) {
	spec, ok := env.Specs.Agents[kind]
	if !ok {
		return 0, fmt.Errorf("system: spawn agent: unknown kind %q", kind)
	}
	radius := spec.Radius
	if radius <= 0 {
		radius = env.Specs.Sim.Combat.AgentRadius
	}

	e := ecs.CreateEntity(w)
	if err := firstErr(
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}),
		ecs.Add(w, e, component.AgentComponent.Kind(), &component.Agent{
			Kind:       spec.Kind,
			Life:       spec.Life,
			MaxLife:    spec.Life,
			Speed:      spec.Speed,
			Resistance: spec.Resistance,
			Weight:     spec.Weight,
			Radius:     radius,
		}),
		ecs.Add(w, e, component.AITagComponent.Kind(), &component.AITag{}),
		ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}),
		ecs.Add(w, e, component.KnockbackComponent.Kind(), &component.Knockback{}),
		ecs.Add(w, e, component.PathfindingComponent.Kind(), &component.Pathfinding{}),
		ecs.Add(w, e, component.SteeringComponent.Kind(), &component.Steering{Mode: component.SteerMode(spec.Mode), Script: spec.Script}),
		ecs.Add(w, e, component.RenderComponent.Kind(), &component.Render{Sprite: spec.Kind}),
	); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("system: spawn agent %s: %w", kind, err)
	}
	env.Stats.Spawned++
	return e, nil
}

// SpawnPlayer creates the player with the loadout named in sim.yaml.
func SpawnPlayer(w *ecs.World, env *Env, pos common.Vec3) (ecs.Entity, error) {
	ps := env.Specs.Sim.Player
	loadout := &component.Loadout{}
	for _, name := range ps.Weapons {
		ws, ok := env.Specs.Weapons[name]
		if !ok {
			return 0, fmt.Errorf("system: spawn player: unknown weapon %q", name)
		}
		loadout.Weapons = append(loadout.Weapons, weaponFromSpec(ws))
	}

	e := ecs.CreateEntity(w)
	if err := firstErr(
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z}),
		ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
			Life:            ps.Life,
			MaxLife:         ps.Life,
			Speed:           ps.Speed,
			InvulnerableFor: ps.Invulnerability,
			Level:           1,
			MagnetRange:     ps.MagnetRange,
		}),
		ecs.Add(w, e, component.PlayerInputComponent.Kind(), &component.PlayerInput{}),
		ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}),
		ecs.Add(w, e, component.LoadoutComponent.Kind(), loadout),
		ecs.Add(w, e, component.RenderComponent.Kind(), &component.Render{Sprite: "player"}),
	); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("system: spawn player: %w", err)
	}
	return e, nil
}

func weaponFromSpec(ws prefabs.WeaponSpec) component.Weapon {
	count := ws.Count
	if count < 1 {
		count = 1
	}
	return component.Weapon{
		Name:              ws.Name,
		Cooldown:          ws.Cooldown,
		Damage:            ws.Damage,
		Range:             ws.Range,
		Speed:             ws.ProjectileSpeed,
		Count:             count,
		Spread:            ws.Spread,
		Pierce:            ws.Pierce,
		Lifetime:          ws.Lifetime,
		Knockback:         ws.Knockback,
		ExplosionRadius:   ws.ExplosionRadius,
		ExplosionStrength: ws.ExplosionStrength,
	}
}

func spawnProjectile(w *ecs.World, pos common.Vec3, dir cp.Vector, wp *component.Weapon) ecs.Entity {
	e := ecs.CreateEntity(w)
	sprite := "bullet"
	if wp.ExplosionRadius > 0 {
		sprite = "bomb"
	}
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z})
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Dir:               dir,
		Speed:             wp.Speed,
		Damage:            wp.Damage,
		Knockback:         wp.Knockback,
		Pierce:            wp.Pierce,
		Lifetime:          wp.Lifetime,
		ExplosionRadius:   wp.ExplosionRadius,
		ExplosionStrength: wp.ExplosionStrength,
	})
	_ = ecs.Add(w, e, component.RenderComponent.Kind(), &component.Render{Sprite: sprite})
	return e
}

func spawnGem(w *ecs.World, pos common.Vec3, value int) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Z: pos.Z})
	_ = ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Value: value})
	_ = ecs.Add(w, e, component.RenderComponent.Kind(), &component.Render{Sprite: gemSprite(value)})
	return e
}

func gemSprite(value int) string {
	switch {
	case value >= 20:
		return "gem_50"
	case value >= 5:
		return "gem_10"
	}
	return "gem_1"
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
