package component

// Pickup is an experience gem dropped by a slain agent.
type Pickup struct {
	Value      int
	Magnetized bool
	Speed      float64
	Removed    bool
}

var PickupComponent = NewComponent[Pickup]()
