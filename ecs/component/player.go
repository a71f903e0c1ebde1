package component

type Player struct {
	Life    int
	MaxLife int
	Speed   float64
	// Invulnerable is the remaining immunity time after a hit, in seconds.
	Invulnerable    float64
	InvulnerableFor float64

	XP          int
	Level       int
	MagnetRange float64
}

var PlayerComponent = NewComponent[Player]()

// PlayerInput is the desired move direction, set by the viewer or the
// headless autopilot before each tick.
type PlayerInput struct {
	MoveX float64
	MoveY float64
}

var PlayerInputComponent = NewComponent[PlayerInput]()
