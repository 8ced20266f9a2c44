package component

import "github.com/milk9111/gravgun/weapon"

// Carrier gives an entity a weapon slot and an interact reach.
type Carrier struct {
	Carrier     *weapon.Carrier
	ReachRadius float64
	// HoldOffsetX/Y place a held weapon relative to the carrier's transform.
	HoldOffsetX float64
	HoldOffsetY float64
}

var CarrierComponent = NewComponent[Carrier]()
