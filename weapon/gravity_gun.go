package weapon

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// GravityGun grabs, carries and launches props.
type GravityGun struct {
	BaseWeapon
	controller *CarryController
}

func NewGravityGun(name string, controller *CarryController) (*GravityGun, error) {
	if controller == nil {
		return nil, fmt.Errorf("%w: gravity gun %q has no controller", ErrInvalidConfig, name)
	}
	return &GravityGun{BaseWeapon: NewBaseWeapon(name), controller: controller}, nil
}

// NewSpaceGravityGun wires a gravity gun straight onto a Chipmunk space.
func NewSpaceGravityGun(name string, space *cp.Space, cfg GravityGunConfig, effects EffectSpawner, liveness Liveness) (*GravityGun, error) {
	cfg, err := cfg.Validated()
	if err != nil {
		return nil, fmt.Errorf("gravity gun %q: %w", name, err)
	}
	tracer := NewSpaceTracer(space)
	tracer.Debug = cfg.Debug
	controller, err := NewCarryController(cfg, CarryDeps{
		Tracer:   tracer,
		Handle:   NewJointHandle(space, cfg.MaxForce),
		Effects:  effects,
		Liveness: liveness,
	})
	if err != nil {
		return nil, fmt.Errorf("gravity gun %q: %w", name, err)
	}
	gun, err := NewGravityGun(name, controller)
	if err != nil {
		return nil, err
	}
	gun.Effects = effects
	return gun, nil
}

func (g *GravityGun) Controller() *CarryController {
	return g.controller
}

func (g *GravityGun) PrimaryAction() {
	src := g.Source()
	if src == nil {
		return
	}
	g.BaseWeapon.PrimaryAction()
	origin, dir := src.Aim()
	g.controller.Primary(origin, dir)
}

func (g *GravityGun) SecondaryAction() {
	src := g.Source()
	if src == nil {
		return
	}
	g.BaseWeapon.SecondaryAction()
	origin, dir := src.Aim()
	g.controller.Secondary(origin, dir)
}

// OnDrop lets go of anything held before unbinding the aim source.
func (g *GravityGun) OnDrop() {
	g.controller.ReleaseWith(ReleaseDropped)
	g.BaseWeapon.OnDrop()
}

func (g *GravityGun) Update(dt float64) {
	src := g.Source()
	if src == nil {
		return
	}
	_, dir := src.Aim()
	g.controller.Tick(dt, src.CarryAnchor(), dir)
}

// SetTraceRecorder routes debug traces to r when the gun traces a space.
func (g *GravityGun) SetTraceRecorder(r TraceRecorder) {
	if t, ok := g.controller.tracer.(*SpaceTracer); ok {
		t.Recorder = r
	}
}

// Retune swaps the gun's tuning. A grab in progress keeps the old tuning
// until it ends.
func (g *GravityGun) Retune(cfg GravityGunConfig) error {
	if err := g.controller.SetConfig(cfg); err != nil {
		return err
	}
	if t, ok := g.controller.tracer.(*SpaceTracer); ok {
		t.Debug = cfg.Debug
	}
	return nil
}
