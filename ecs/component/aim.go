package component

// Aim is where a carrier points. Origin and the carry anchor are offsets from
// the entity's transform.
type Aim struct {
	DirX float64
	DirY float64

	OriginOffsetX float64
	OriginOffsetY float64

	AnchorOffsetX float64
	AnchorOffsetY float64
}

var AimComponent = NewComponent[Aim]()
