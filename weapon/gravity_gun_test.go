package weapon

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func newTestGun(t *testing.T, space *cp.Space, cfg GravityGunConfig, live Liveness) *GravityGun {
	t.Helper()
	cfg.Effects = EffectNames{}
	gun, err := NewSpaceGravityGun("gravity_gun", space, cfg, nil, live)
	if err != nil {
		t.Fatalf("NewSpaceGravityGun: %v", err)
	}
	gun.Controller().logf = func(string, ...any) {}
	return gun
}

func TestGravityGunGrabOnRealSpace(t *testing.T) {
	space := newTestSpace()
	body := addTestProp(space, 11, cp.Vector{X: 500}, 10, CategoryProp)
	gun := newTestGun(t, space, DefaultGravityGunConfig(), nil)

	carrier := NewCarrier()
	carrier.Pickup(30, gun)
	carrier.SetAim(cp.Vector{}, cp.Vector{X: 1}, cp.Vector{})

	carrier.Secondary()
	ctrl := gun.Controller()
	if ctrl.State() != Grabbing {
		t.Fatalf("expected grab, got %v", ctrl.State())
	}
	if anchor, _ := ctrl.AnchorPose(); !approx(anchor.X, 500) || !approx(anchor.Y, -50) {
		t.Fatalf("expected anchor (500,-50), got %v", anchor)
	}

	start := body.Position()
	for i := 0; i < 90; i++ {
		carrier.Update(1.0 / 60.0)
		space.Step(1.0 / 60.0)
	}
	if body.Position().X >= start.X {
		t.Fatalf("carried body should move toward the carrier, x went %v -> %v", start.X, body.Position().X)
	}

	carrier.Primary()
	if ctrl.State() != Idle {
		t.Fatalf("launch should release")
	}
	if body.Velocity().X <= 0 {
		t.Fatalf("launched body should fly along +X, got %v", body.Velocity())
	}
	if n := countConstraints(space); n != 0 {
		t.Fatalf("expected no joints left, got %d", n)
	}
}

func TestGravityGunCarriesToDesiredPose(t *testing.T) {
	space := newTestSpace()
	body := addTestProp(space, 11, cp.Vector{X: 500}, 10, CategoryProp)
	cfg := DefaultGravityGunConfig()
	cfg.FollowLerpAlpha = 1
	gun := newTestGun(t, space, cfg, nil)

	carrier := NewCarrier()
	carrier.Pickup(30, gun)
	carrier.SetAim(cp.Vector{}, cp.Vector{X: 1}, cp.Vector{})
	carrier.Secondary()
	if body.Position() != (cp.Vector{X: 500}) {
		t.Fatalf("grab must not move the body, got %v", body.Position())
	}

	carrier.Update(1.0 / 60.0)
	desired := DesiredPose(cp.Vector{}, cp.Vector{X: 1}, cfg.FollowDistance, cfg.FollowOffset)
	anchor, _ := gun.Controller().AnchorPose()
	if !approx(anchor.X, desired.X) || !approx(anchor.Y, desired.Y) {
		t.Fatalf("anchor %v != desired %v", anchor, desired)
	}

	for i := 0; i < 600; i++ {
		carrier.Update(1.0 / 60.0)
		space.Step(1.0 / 60.0)
	}
	held := body.LocalToWorld(cfg.GrabOffset)
	if d := held.Distance(desired); d > 5 {
		t.Fatalf("grab point should settle on %v, got %v", desired, held)
	}
}

func TestGravityGunDropWhileGrabbing(t *testing.T) {
	space := newTestSpace()
	addTestProp(space, 11, cp.Vector{X: 200}, 10, CategoryProp)

	var reason ReleaseReason = -1
	gun := newTestGun(t, space, DefaultGravityGunConfig(), nil)
	gun.Controller().OnRelease = func(r ReleaseReason, _ GrabSession) { reason = r }

	carrier := NewCarrier()
	carrier.Pickup(30, gun)
	carrier.SetAim(cp.Vector{}, cp.Vector{X: 1}, cp.Vector{})
	carrier.Secondary()
	stops := 0
	gun.Controller().OnCleanup(func() { stops++ })

	carrier.Drop()
	if _, _, ok := carrier.Equipped(); ok {
		t.Fatalf("slot should be empty")
	}
	if gun.Controller().State() != Idle || reason != ReleaseDropped {
		t.Fatalf("drop should release, state=%v reason=%v", gun.Controller().State(), reason)
	}
	if stops != 1 || countConstraints(space) != 0 {
		t.Fatalf("drop should tear the grab down once, stops=%d joints=%d", stops, countConstraints(space))
	}
	if gun.Held() {
		t.Fatalf("dropped gun should have no aim source")
	}

	// Actions on an unheld gun go nowhere.
	gun.SecondaryAction()
	gun.Update(1.0 / 60.0)
	if gun.Controller().State() != Idle {
		t.Fatalf("unheld gun must stay idle")
	}
}

func TestGravityGunReleasesDestroyedTarget(t *testing.T) {
	space := newTestSpace()
	body := addTestProp(space, 11, cp.Vector{X: 200}, 10, CategoryProp)
	alive := true
	gun := newTestGun(t, space, DefaultGravityGunConfig(), LivenessFunc(func(ActorID) bool { return alive }))

	carrier := NewCarrier()
	carrier.Pickup(30, gun)
	carrier.SetAim(cp.Vector{}, cp.Vector{X: 1}, cp.Vector{})
	carrier.Secondary()
	if gun.Controller().State() != Grabbing {
		t.Fatalf("expected grab")
	}

	alive = false
	var attached []*cp.Constraint
	body.EachConstraint(func(c *cp.Constraint) { attached = append(attached, c) })
	for _, c := range attached {
		space.RemoveConstraint(c)
	}
	body.EachShape(func(s *cp.Shape) { space.RemoveShape(s) })
	space.RemoveBody(body)

	carrier.Update(1.0 / 60.0)
	if gun.Controller().State() != Idle {
		t.Fatalf("lost target should force a release")
	}
	carrier.Update(1.0 / 60.0)
}

func TestGravityGunRequiresController(t *testing.T) {
	if _, err := NewGravityGun("broken", nil); err == nil {
		t.Fatalf("expected an error for a missing controller")
	}
	cfg := DefaultGravityGunConfig()
	cfg.MaxRange = 0
	if _, err := NewSpaceGravityGun("broken", newTestSpace(), cfg, nil, nil); err == nil {
		t.Fatalf("expected invalid config to be rejected")
	}
}

func countConstraints(space *cp.Space) int {
	n := 0
	space.EachConstraint(func(*cp.Constraint) { n++ })
	return n
}

func TestGravityGunRetuneTogglesDebugTraces(t *testing.T) {
	space := newTestSpace()
	addTestProp(space, 11, cp.Vector{X: 200}, 10, CategoryProp)
	gun := newTestGun(t, space, DefaultGravityGunConfig(), nil)
	rec := &traceLog{}
	gun.SetTraceRecorder(rec)

	carrier := NewCarrier()
	carrier.Pickup(30, gun)
	carrier.SetAim(cp.Vector{}, cp.Vector{X: 1}, cp.Vector{})

	carrier.Primary()
	if len(rec.traces) != 0 {
		t.Fatalf("debug is off by default")
	}

	cfg := DefaultGravityGunConfig()
	cfg.Debug = true
	if err := gun.Retune(cfg); err != nil {
		t.Fatal(err)
	}
	carrier.Primary()
	if len(rec.traces) != 1 || !rec.traces[0].hit {
		t.Fatalf("expected one recorded hit, got %+v", rec.traces)
	}
}
