package component

import "github.com/milk9111/gravgun/weapon"

// Effect is a spawned sound or particle effect. Follow, when non-zero, is
// the entity handle the effect tracks.
type Effect struct {
	Kind    weapon.EffectKind
	Name    string
	Follow  uint64
	Loop    bool
	Stopped bool
}

var EffectComponent = NewComponent[Effect]()
