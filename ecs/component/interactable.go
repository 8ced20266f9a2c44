package component

// Interactable actors can be picked up by a carrier standing within reach.
type Interactable struct {
	Width  float64
	Height float64
	Prompt string
}

var InteractableComponent = NewComponent[Interactable]()
