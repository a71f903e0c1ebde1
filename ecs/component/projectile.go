package component

import "github.com/jakecoffman/cp"

type Projectile struct {
	Dir       cp.Vector
	Speed     float64
	Damage    int
	Knockback float64
	Pierce    int
	// Lifetime is the remaining flight time in seconds.
	Lifetime float64

	ExplosionRadius   float64
	ExplosionStrength float64

	// Hits holds the agents already struck, so a piercing shot damages each
	// agent once.
	Hits    []uint64
	Removed bool
}

func (p *Projectile) HasHit(id uint64) bool {
	for _, h := range p.Hits {
		if h == id {
			return true
		}
	}
	return false
}

var ProjectileComponent = NewComponent[Projectile]()
