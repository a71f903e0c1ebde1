package component

import "github.com/jakecoffman/cp"

// Velocity is the steering velocity in tiles per second, written by the
// player and AI systems and consumed by movement.
type Velocity struct {
	Value cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
