package sim

import (
	"github.com/g-brrzzn/IsoSurvivor/common"
	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
)

type SpriteKind int

const (
	SpriteTile SpriteKind = iota
	SpritePlayer
	SpriteAgent
	SpriteProjectile
	SpritePickup
)

// Sprite is one entry of the draw list.
type Sprite struct {
	Kind   SpriteKind
	Name   string
	Entity ecs.Entity
	Pos    common.Vec3
	SX, SY float64
	Depth  float64
	// Health is life over max life for agents and the player, otherwise 1.
	Health float64
}

func (s Sprite) WorldPosition() common.Vec3 {
	return s.Pos
}

// DrawList returns raised tiles and every rendered entity ordered back to
// front. Floor tiles are left to the caller. The slice is reused by the next
// call.
func (s *Sim) DrawList() []Sprite {
	proj := s.Projection()
	s.draw = s.draw[:0]

	for _, t := range s.env.Map.Tiles {
		if t.Cell.Z == 0 {
			continue
		}
		pos := t.Cell.Vec()
		sx, sy := proj.WorldToScreen(pos)
		s.draw = append(s.draw, Sprite{Kind: SpriteTile, Name: t.Asset, Pos: pos, SX: sx, SY: sy, Depth: proj.Depth(pos), Health: 1})
	}

	ecs.ForEach2(s.world, component.RenderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, r *component.Render, t *component.Transform) {
		sp := Sprite{Name: r.Sprite, Entity: e, Pos: t.Pos(), SX: r.SX, SY: r.SY, Depth: r.Depth, Health: 1}
		switch {
		case ecs.Has(s.world, e, component.PlayerComponent.Kind()):
			sp.Kind = SpritePlayer
			if p, ok := ecs.Get(s.world, e, component.PlayerComponent.Kind()); ok && p.MaxLife > 0 {
				sp.Health = float64(p.Life) / float64(p.MaxLife)
			}
		case ecs.Has(s.world, e, component.AgentComponent.Kind()):
			sp.Kind = SpriteAgent
			if a, ok := ecs.Get(s.world, e, component.AgentComponent.Kind()); ok && a.MaxLife > 0 {
				sp.Health = float64(a.Life) / float64(a.MaxLife)
			}
		case ecs.Has(s.world, e, component.ProjectileComponent.Kind()):
			sp.Kind = SpriteProjectile
		case ecs.Has(s.world, e, component.PickupComponent.Kind()):
			sp.Kind = SpritePickup
		}
		s.draw = append(s.draw, sp)
	})

	common.DepthSort(proj, s.draw)
	return s.draw
}
