package weapon

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var ErrInvalidConfig = errors.New("weapon: invalid config")

// GravityGunConfig is the tuning for one gravity gun.
type GravityGunConfig struct {
	MaxRange   float64
	Categories Category

	// GrabOffset is added to the grabbed body's position to form the grab
	// point. The body is held at that point, so it swings below the anchor
	// while carried. FollowOffset shifts the carry point itself.
	GrabOffset      cp.Vector
	FollowOffset    cp.Vector
	FollowDistance  float64
	FollowLerpAlpha float64

	LaunchImpulse float64
	MaxForce      float64
	Debug         bool

	Effects EffectNames
}

func DefaultGravityGunConfig() GravityGunConfig {
	return GravityGunConfig{
		MaxRange:        1000,
		Categories:      CategoryProp | CategoryDebris,
		GrabOffset:      cp.Vector{X: 0, Y: -50},
		FollowDistance:  120,
		FollowLerpAlpha: 0.25,
		LaunchImpulse:   900,
		MaxForce:        defaultGrabMaxForce,
		Effects: EffectNames{
			LaunchSound:     "launch",
			LaunchParticles: "launch_burst",
			GrabSound:       "grab",
			HoverSound:      "hover",
			HoverParticles:  "beam",
			MuzzleBeam:      "muzzle_beam",
			MuzzleParticles: "muzzle_flash",
		},
	}
}

// Validated returns c with FollowLerpAlpha clamped into [0,1]. Ranges and
// magnitudes that cannot be clamped sensibly are rejected.
func (c GravityGunConfig) Validated() (GravityGunConfig, error) {
	if c.MaxRange <= 0 || math.IsNaN(c.MaxRange) {
		return c, fmt.Errorf("%w: max range %v must be positive", ErrInvalidConfig, c.MaxRange)
	}
	if c.Categories == 0 {
		return c, fmt.Errorf("%w: no target categories", ErrInvalidConfig)
	}
	if c.LaunchImpulse < 0 {
		return c, fmt.Errorf("%w: launch impulse %v is negative", ErrInvalidConfig, c.LaunchImpulse)
	}
	if c.FollowDistance < 0 {
		return c, fmt.Errorf("%w: follow distance %v is negative", ErrInvalidConfig, c.FollowDistance)
	}
	if math.IsNaN(c.FollowLerpAlpha) {
		return c, fmt.Errorf("%w: follow alpha is NaN", ErrInvalidConfig)
	}
	c.FollowLerpAlpha = math.Max(0, math.Min(1, c.FollowLerpAlpha))
	if c.MaxForce <= 0 {
		c.MaxForce = defaultGrabMaxForce
	}
	return c, nil
}
