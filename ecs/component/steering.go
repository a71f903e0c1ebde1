package component

type SteerMode string

const (
	SteerPath   SteerMode = "path"
	SteerDirect SteerMode = "direct"
	SteerHold   SteerMode = "hold"
)

// Steering selects how an agent chases its target and how strongly it
// spreads away from neighbours.
type Steering struct {
	Mode             SteerMode
	PathWeight       float64
	SeparationWeight float64
	// Script optionally overrides Mode and weights each tick.
	Script string
}

var SteeringComponent = NewComponent[Steering]()
