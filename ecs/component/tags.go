package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// AITag marks agents driven by the AI system.
type AITag struct{}

var AITagComponent = NewComponent[AITag]()
