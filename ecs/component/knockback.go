package component

import "github.com/jakecoffman/cp"

// Knockback accumulates impulses. It decays every tick and, while large,
// replaces steering entirely.
type Knockback struct {
	Value cp.Vector
}

var KnockbackComponent = NewComponent[Knockback]()
