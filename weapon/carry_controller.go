package weapon

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
)

type CarryState int

const (
	Idle CarryState = iota
	Grabbing
)

func (s CarryState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Grabbing:
		return "grabbing"
	default:
		return fmt.Sprintf("CarryState(%d)", int(s))
	}
}

type ReleaseReason int

const (
	ReleaseManual ReleaseReason = iota
	ReleaseLaunch
	ReleaseTargetLost
	ReleaseDropped
)

func (r ReleaseReason) String() string {
	switch r {
	case ReleaseManual:
		return "manual"
	case ReleaseLaunch:
		return "launch"
	case ReleaseTargetLost:
		return "target_lost"
	case ReleaseDropped:
		return "dropped"
	default:
		return fmt.Sprintf("ReleaseReason(%d)", int(r))
	}
}

// GrabSession exists only while the controller is Grabbing.
type GrabSession struct {
	Target          BodyRef
	CurrentPose     cp.Vector
	GrabOffset      cp.Vector
	FollowOffset    cp.Vector
	FollowDistance  float64
	FollowLerpAlpha float64
}

// CarryDeps are the collaborators of a CarryController. Tracer and Handle
// are required.
type CarryDeps struct {
	Tracer   Tracer
	Handle   Grabber
	Effects  EffectSpawner
	Liveness Liveness
	Logf     func(format string, args ...any)
}

// CarryController is the gravity gun's idle/grabbing state machine.
type CarryController struct {
	cfg     GravityGunConfig
	pending *GravityGunConfig

	tracer   Tracer
	handle   Grabber
	effects  EffectSpawner
	liveness Liveness
	logf     func(format string, args ...any)

	state   CarryState
	session GrabSession
	cleanup CleanupList

	// OnGrab and OnRelease are invoked after the corresponding transition.
	OnGrab    func(GrabSession)
	OnRelease func(ReleaseReason, GrabSession)
}

func NewCarryController(cfg GravityGunConfig, deps CarryDeps) (*CarryController, error) {
	cfg, err := cfg.Validated()
	if err != nil {
		return nil, err
	}
	if deps.Tracer == nil || deps.Handle == nil {
		return nil, fmt.Errorf("%w: carry controller needs a tracer and a grab handle", ErrInvalidConfig)
	}
	logf := deps.Logf
	if logf == nil {
		logf = log.Printf
	}
	return &CarryController{
		cfg:      cfg,
		tracer:   deps.Tracer,
		handle:   deps.Handle,
		effects:  deps.Effects,
		liveness: deps.Liveness,
		logf:     logf,
	}, nil
}

func (c *CarryController) State() CarryState {
	return c.state
}

// Session returns the active grab, if any.
func (c *CarryController) Session() (GrabSession, bool) {
	if c.state != Grabbing {
		return GrabSession{}, false
	}
	s := c.session
	s.CurrentPose = c.handle.CurrentPose()
	return s, true
}

// AnchorPose is the last commanded anchor while grabbing.
func (c *CarryController) AnchorPose() (cp.Vector, bool) {
	if c.state != Grabbing {
		return cp.Vector{}, false
	}
	return c.handle.CurrentPose(), true
}

func (c *CarryController) Config() GravityGunConfig {
	return c.cfg
}

// SetConfig replaces the tuning. While grabbing, the new tuning is held back
// until the grab ends.
func (c *CarryController) SetConfig(cfg GravityGunConfig) error {
	cfg, err := cfg.Validated()
	if err != nil {
		return err
	}
	if c.state == Grabbing {
		c.pending = &cfg
		return nil
	}
	c.cfg = cfg
	c.pending = nil
	return nil
}

// TryStartGrab traces along aim and attaches to whatever it hits. A miss
// leaves the controller Idle and is not an error.
func (c *CarryController) TryStartGrab(origin, aim cp.Vector) bool {
	if c.state == Grabbing {
		return false
	}
	hit, ok := c.trace(origin, aim)
	if !ok {
		return false
	}

	grabPoint := hit.Target.Body.Position().Add(c.cfg.GrabOffset)
	if err := c.handle.Attach(hit.Target, grabPoint); err != nil {
		c.logf("weapon: grab attach failed: actor=%d err=%v", hit.Target.Actor, err)
		return false
	}

	c.session = GrabSession{
		Target:          hit.Target,
		CurrentPose:     grabPoint,
		GrabOffset:      c.cfg.GrabOffset,
		FollowOffset:    c.cfg.FollowOffset,
		FollowDistance:  c.cfg.FollowDistance,
		FollowLerpAlpha: c.cfg.FollowLerpAlpha,
	}
	c.state = Grabbing
	c.spawn(EffectSound, c.cfg.Effects.GrabSound, grabPoint, 0, false)

	if c.OnGrab != nil {
		c.OnGrab(c.session)
	}
	return true
}

// Release ends the grab. It is a no-op while Idle.
func (c *CarryController) Release() {
	c.ReleaseWith(ReleaseManual)
}

func (c *CarryController) ReleaseWith(reason ReleaseReason) {
	if c.state != Grabbing {
		return
	}
	session := c.session
	session.CurrentPose = c.handle.CurrentPose()

	// Leave Grabbing before running callbacks so a callback that calls back
	// into Release finds nothing to do.
	c.state = Idle
	c.cleanup.Drain()
	c.cleanup.Clear()
	c.handle.Release()
	c.session = GrabSession{}

	if c.pending != nil {
		c.cfg = *c.pending
		c.pending = nil
	}

	if reason == ReleaseTargetLost {
		c.logf("weapon: grabbed actor lost, releasing: actor=%d", session.Target.Actor)
	}
	if c.OnRelease != nil {
		c.OnRelease(reason, session)
	}
}

// Tick carries the held body toward the point FollowDistance ahead of
// carrierAnchor along aim. The anchor moves by one smoothing step per tick
// and never snaps unless alpha is 1.
func (c *CarryController) Tick(dt float64, carrierAnchor, aim cp.Vector) {
	if c.state != Grabbing || dt <= 0 {
		return
	}
	if !c.targetAlive() {
		c.ReleaseWith(ReleaseTargetLost)
		return
	}

	desired := DesiredPose(carrierAnchor, unit(aim), c.session.FollowDistance, c.session.FollowOffset)
	next := c.handle.CurrentPose().Lerp(desired, c.session.FollowLerpAlpha)
	c.handle.SetTargetPose(next)
}

// DesiredPose is the carry point FollowDistance ahead of anchor along aim.
func DesiredPose(anchor, aim cp.Vector, distance float64, offset cp.Vector) cp.Vector {
	return anchor.Add(aim.Mult(distance)).Add(offset)
}

// Primary launches. While Grabbing the held body is pushed along aim and
// released. While Idle whatever the trace hits is pushed without a grab.
// Either way the controller ends Idle. The muzzle beam fires on every press.
func (c *CarryController) Primary(origin, aim cp.Vector) {
	dir := unit(aim)
	impulse := dir.Mult(c.cfg.LaunchImpulse)
	if c.effects != nil && c.cfg.Effects.MuzzleBeam != "" {
		c.effects.Spawn(EffectRequest{
			Kind: EffectBeam,
			Name: c.cfg.Effects.MuzzleBeam,
			At:   origin,
			To:   origin.Add(dir.Mult(c.cfg.MaxRange)),
		})
	}

	if c.state == Grabbing {
		if c.targetAlive() {
			body := c.session.Target.Body
			at := body.Position()
			body.ApplyImpulseAtWorldPoint(impulse, at)
			c.spawnLaunch(at)
			c.ReleaseWith(ReleaseLaunch)
			return
		}
		c.ReleaseWith(ReleaseTargetLost)
		return
	}

	hit, ok := c.trace(origin, dir)
	if !ok {
		return
	}
	hit.Target.Body.ApplyImpulseAtWorldPoint(impulse, hit.Point)
	c.spawnLaunch(hit.Point)
}

// Secondary toggles the grab. Every press bursts the muzzle particles. A
// fresh grab starts the hover feedback and registers its teardown with the
// grab's cleanup list.
func (c *CarryController) Secondary(origin, aim cp.Vector) {
	c.spawn(EffectParticles, c.cfg.Effects.MuzzleParticles, origin, 0, false)
	if c.state == Grabbing {
		c.Release()
		return
	}
	if !c.TryStartGrab(origin, aim) {
		return
	}
	target := c.session.Target
	at := c.handle.CurrentPose()
	if h := c.spawn(EffectSound, c.cfg.Effects.HoverSound, at, target.Actor, true); h != nil {
		c.cleanup.Add(h.Stop)
	}
	if h := c.spawn(EffectParticles, c.cfg.Effects.HoverParticles, at, target.Actor, true); h != nil {
		c.cleanup.Add(h.Stop)
	}
}

// OnCleanup registers fn to run exactly once when the current grab ends.
// Outside a grab fn is dropped.
func (c *CarryController) OnCleanup(fn func()) {
	if c.state != Grabbing {
		return
	}
	c.cleanup.Add(fn)
}

func (c *CarryController) trace(origin, aim cp.Vector) (Hit, bool) {
	hit, ok := c.tracer.Trace(origin, aim, c.cfg.MaxRange, c.cfg.Categories)
	if !ok || hit.Target.Body == nil {
		return Hit{}, false
	}
	return hit, true
}

func (c *CarryController) targetAlive() bool {
	if !c.handle.TargetValid() {
		return false
	}
	if c.liveness != nil && c.session.Target.Actor != 0 {
		return c.liveness.Alive(c.session.Target.Actor)
	}
	return true
}

func (c *CarryController) spawnLaunch(at cp.Vector) {
	c.spawn(EffectSound, c.cfg.Effects.LaunchSound, at, 0, false)
	c.spawn(EffectParticles, c.cfg.Effects.LaunchParticles, at, 0, false)
}

func (c *CarryController) spawn(kind EffectKind, name string, at cp.Vector, follow ActorID, loop bool) EffectHandle {
	if c.effects == nil || name == "" {
		return nil
	}
	return c.effects.Spawn(EffectRequest{Kind: kind, Name: name, At: at, Follow: follow, Loop: loop})
}
