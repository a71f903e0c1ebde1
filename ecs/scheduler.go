package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// Scheduler keeps the system order of a world. Systems run in the order they
// were added.
type Scheduler struct {
	systems []System
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}
