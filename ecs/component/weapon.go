package component

type Weapon struct {
	Name     string
	Cooldown float64
	Timer    float64
	Damage   int
	Range    float64
	Speed    float64
	Count    int
	Spread   float64
	Pierce   int
	Lifetime float64

	Knockback         float64
	ExplosionRadius   float64
	ExplosionStrength float64
}

// Loadout lists the weapons an entity fires automatically.
type Loadout struct {
	Weapons []Weapon
}

var LoadoutComponent = NewComponent[Loadout]()
