package component

import "image/color"

// Sprite is a flat coloured quad centred on the transform unless an origin
// is given.
type Sprite struct {
	Width      float64
	Height     float64
	Circle     bool
	Color      color.RGBA
	OriginX    float64
	OriginY    float64
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
