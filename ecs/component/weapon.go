package component

import "github.com/milk9111/gravgun/weapon"

// Weapon attaches a carried-weapon implementation to an actor in the world.
type Weapon struct {
	Weapon weapon.Weapon
	// Holder is the carrying entity's handle, zero while the weapon lies in
	// the world.
	Holder uint64
	// MuzzleLength is how far ahead of the holder the beam starts.
	MuzzleLength float64
}

var WeaponComponent = NewComponent[Weapon]()
