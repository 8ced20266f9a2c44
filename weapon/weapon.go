// Package weapon holds the carried-weapon gameplay: the weapon capability
// set, the character-side carrier, and the gravity gun's grab/carry/launch
// state machine on top of Chipmunk.
package weapon

//go:generate go tool mockgen -destination=./mocks/weapon_mock.go -package=mocks . Tracer,Grabber,EffectSpawner,EffectHandle,Weapon,Liveness

import "github.com/jakecoffman/cp"

// Weapon is the capability set every carried weapon exposes.
type Weapon interface {
	Name() string
	PrimaryAction()
	SecondaryAction()
	OnPickup(src AimSource)
	OnDrop()
}

// Updater is implemented by weapons that step every tick while held.
type Updater interface {
	Update(dt float64)
}

// AimSource supplies the current aim ray and the point a carried object
// follows.
type AimSource interface {
	Aim() (origin, direction cp.Vector)
	CarryAnchor() cp.Vector
}

// BaseWeapon binds an aim source on pickup and plays the action sounds.
// Concrete weapons embed it and override the actions they support, calling
// back into the base action for the sound.
type BaseWeapon struct {
	name   string
	source AimSource

	// Effects plays PrimarySound and SecondarySound at the aim origin on
	// every press while held.
	Effects        EffectSpawner
	PrimarySound   string
	SecondarySound string
}

func NewBaseWeapon(name string) BaseWeapon {
	return BaseWeapon{name: name}
}

func (b *BaseWeapon) Name() string { return b.name }

func (b *BaseWeapon) PrimaryAction() { b.playAction(b.PrimarySound) }

func (b *BaseWeapon) SecondaryAction() { b.playAction(b.SecondarySound) }

func (b *BaseWeapon) OnPickup(src AimSource) { b.source = src }

func (b *BaseWeapon) OnDrop() { b.source = nil }

func (b *BaseWeapon) playAction(name string) {
	if b.source == nil || b.Effects == nil || name == "" {
		return
	}
	origin, _ := b.source.Aim()
	b.Effects.Spawn(EffectRequest{Kind: EffectSound, Name: name, At: origin})
}

// Source is the bound aim source, nil while the weapon lies in the world.
func (b *BaseWeapon) Source() AimSource { return b.source }

func (b *BaseWeapon) Held() bool { return b.source != nil }
