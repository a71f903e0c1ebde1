package component

import "github.com/g-brrzzn/IsoSurvivor/level"

// Pathfinding stores the waypoints of one agent. Paths are never shared.
type Pathfinding struct {
	Path []level.Cell
	// Timer counts down to the next replan.
	Timer float64
	// Interval overrides the configured replan interval when positive.
	Interval float64
	Target   level.Cell
	Planned  int
	Failed   int
}

var PathfindingComponent = NewComponent[Pathfinding]()
