package component

// Agent holds the combat stats of an autonomous enemy.
type Agent struct {
	Kind       string
	Life       int
	MaxLife    int
	Speed      float64
	Resistance float64
	// Weight is the experience value dropped on death.
	Weight int
	Radius float64

	// Removed marks the agent for the end-of-tick sweep. Removed agents are
	// ignored by every query.
	Removed bool
}

var AgentComponent = NewComponent[Agent]()
