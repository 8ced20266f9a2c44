package weapon

import "github.com/jakecoffman/cp"

type EffectKind int

const (
	EffectSound EffectKind = iota
	EffectParticles
	EffectBeam
)

func (k EffectKind) String() string {
	switch k {
	case EffectSound:
		return "sound"
	case EffectParticles:
		return "particles"
	case EffectBeam:
		return "beam"
	default:
		return "unknown"
	}
}

// EffectRequest describes a fire-and-forget effect spawn. Follow, when set,
// keeps the effect on that actor instead of at At. Beams run from At to To.
type EffectRequest struct {
	Kind   EffectKind
	Name   string
	At     cp.Vector
	To     cp.Vector
	Follow ActorID
	Loop   bool
}

// EffectHandle stops a spawned effect. Stop may be called more than once.
type EffectHandle interface {
	Stop()
}

// EffectSpawner spawns sounds and particles. It may return nil when the
// effect could not be spawned.
type EffectSpawner interface {
	Spawn(req EffectRequest) EffectHandle
}

// EffectNames lists the effects a gravity gun plays. Empty names are skipped.
type EffectNames struct {
	LaunchSound     string
	LaunchParticles string
	GrabSound       string
	HoverSound      string
	HoverParticles  string
	// MuzzleBeam is drawn out to MaxRange on every primary press, and
	// MuzzleParticles burst at the muzzle on every secondary press.
	MuzzleBeam      string
	MuzzleParticles string
}
