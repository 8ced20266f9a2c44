package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/weapon"
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
type PhysicsBody struct {
	Body         *cp.Body
	Shape        *cp.Shape
	Width        float64
	Height       float64
	Radius       float64
	Mass         float64
	Friction     float64
	Elasticity   float64
	OffsetX      float64
	OffsetY      float64
	Static       bool
	AlignTopLeft bool

	// Category is the object's physical category. Zero means world geometry.
	Category weapon.Category
	// Frozen bodies start kinematic and stay put until something wakes them.
	Frozen bool
	// Carried bodies follow their Transform and collide with nothing.
	Carried bool
	// NoRotation locks the moment to infinity, for characters.
	NoRotation bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
