package component

// Render is the screen-space placement produced by the projection system.
type Render struct {
	Sprite string
	SX     float64
	SY     float64
	Depth  float64
}

var RenderComponent = NewComponent[Render]()
