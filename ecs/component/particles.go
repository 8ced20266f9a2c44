package component

import (
	"image/color"
	"math/rand/v2"
)

type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
}

// ParticleEmitter spawns short-lived particles around its transform.
type ParticleEmitter struct {
	Name string
	// Rate is particles per frame; fractions accumulate.
	Rate      float64
	Burst     int
	Lifetime  int
	Speed     float64
	Spread    float64
	DirX      float64
	DirY      float64
	Color     color.RGBA
	Size      float64
	Loop      bool
	Stopped   bool
	Particles []Particle

	Accum float64
	// Seed picks the particle stream. Rand is built from it on first spawn.
	Seed uint64
	Rand *rand.Rand
}

var ParticleEmitterComponent = NewComponent[ParticleEmitter]()
