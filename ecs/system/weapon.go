package system

import (
	"image/color"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/weapon"
)

var beamColor = color.RGBA{R: 220, G: 146, B: 34, A: 220}

// WeaponSystem routes carrier input to held weapons and keeps held weapons
// attached to their carrier.
type WeaponSystem struct {
	dt     float64
	hooked map[*weapon.Carrier]bool
}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{dt: 1.0 / StepRate, hooked: make(map[*weapon.Carrier]bool)}
}

func (ws *WeaponSystem) Update(w *ecs.World) {
	if ws == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.CarrierComponent.Kind(), component.TransformComponent.Kind(), func(ce ecs.Entity, carrierComp *component.Carrier, ct *component.Transform) {
		c := carrierComp.Carrier
		if c == nil {
			return
		}
		ws.hook(w, ce, carrierComp)

		origin, dir, anchor := carrierAim(w, ce, ct)
		c.SetAim(origin, dir, anchor)

		if id, _, ok := c.Equipped(); ok && !w.IsAlive(actorEntity(id)) {
			log.Printf("weapon: equipped weapon destroyed, dropping: carrier=%v weapon=%d", ce, id)
			c.Drop()
		}

		if input, ok := ecs.Get(w, ce, component.InputComponent.Kind()); ok {
			if input.InteractPressed {
				c.Interact(func(id weapon.ActorID) (weapon.Weapon, bool) {
					return resolveWeapon(w, actorEntity(id))
				})
			}
			if input.PrimaryPressed {
				c.Primary()
			}
			if input.SecondaryPressed {
				c.Secondary()
			}
		}

		c.Update(ws.dt)

		if id, _, ok := c.Equipped(); ok {
			ws.followCarrier(w, actorEntity(id), carrierComp, ct, dir)
		}
	})
}

// hook installs the carrier callbacks that keep ECS state in line with the
// weapon slot.
func (ws *WeaponSystem) hook(w *ecs.World, ce ecs.Entity, carrierComp *component.Carrier) {
	c := carrierComp.Carrier
	if ws.hooked[c] {
		return
	}
	ws.hooked[c] = true

	c.OnPickup = func(id weapon.ActorID, _ weapon.Weapon) {
		we := actorEntity(id)
		if wc, ok := ecs.Get(w, we, component.WeaponComponent.Kind()); ok {
			wc.Holder = uint64(ce)
		}
		if body, ok := ecs.Get(w, we, component.PhysicsBodyComponent.Kind()); ok {
			body.Carried = true
		}
		playSound(w, ce, "pickup")
		w.Events().Push(ecs.Event{Type: ecs.EventWeaponPickup, Data: ecs.WeaponEvent{Carrier: ce, Weapon: we}})
	}
	c.OnDrop = func(id weapon.ActorID, _ weapon.Weapon) {
		we := actorEntity(id)
		if wc, ok := ecs.Get(w, we, component.WeaponComponent.Kind()); ok {
			wc.Holder = 0
		}
		if body, ok := ecs.Get(w, we, component.PhysicsBodyComponent.Kind()); ok {
			body.Carried = false
		}
		if line, ok := ecs.Get(w, we, component.LineRenderComponent.Kind()); ok {
			line.Hidden = true
		}
		playSound(w, ce, "drop")
		w.Events().Push(ecs.Event{Type: ecs.EventWeaponDrop, Data: ecs.WeaponEvent{Carrier: ce, Weapon: we}})
	}
}

// playSound flags the named sound on e, if e has one by that name.
func playSound(w *ecs.World, e ecs.Entity, name string) {
	audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok {
		return
	}
	if i := audioComp.Index(name); i >= 0 && i < len(audioComp.Play) {
		audioComp.Play[i] = true
	}
}

func carrierAim(w *ecs.World, ce ecs.Entity, ct *component.Transform) (origin, dir, anchor cp.Vector) {
	pos := cp.Vector{X: ct.X, Y: ct.Y}
	aim, ok := ecs.Get(w, ce, component.AimComponent.Kind())
	if !ok {
		return pos, cp.Vector{X: 1}, pos
	}
	dir = cp.Vector{X: aim.DirX, Y: aim.DirY}
	origin = pos.Add(cp.Vector{X: aim.OriginOffsetX, Y: aim.OriginOffsetY})
	anchor = pos.Add(cp.Vector{X: aim.AnchorOffsetX, Y: aim.AnchorOffsetY})
	return origin, dir, anchor
}

func resolveWeapon(w *ecs.World, e ecs.Entity) (weapon.Weapon, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	wc, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok || wc.Weapon == nil || wc.Holder != 0 {
		return nil, false
	}
	return wc.Weapon, true
}

// followCarrier pins the held weapon to its carrier and draws the beam while
// a gravity gun holds something.
func (ws *WeaponSystem) followCarrier(w *ecs.World, we ecs.Entity, carrierComp *component.Carrier, ct *component.Transform, dir cp.Vector) {
	side := 1.0
	if dir.X < 0 {
		side = -1
	}
	wt, ok := ecs.Get(w, we, component.TransformComponent.Kind())
	if !ok {
		return
	}
	wt.X = ct.X + carrierComp.HoldOffsetX*side
	wt.Y = ct.Y + carrierComp.HoldOffsetY
	if sprite, ok := ecs.Get(w, we, component.SpriteComponent.Kind()); ok {
		sprite.FacingLeft = side < 0
	}

	line, ok := ecs.Get(w, we, component.LineRenderComponent.Kind())
	if !ok {
		return
	}
	wc, ok := ecs.Get(w, we, component.WeaponComponent.Kind())
	if !ok {
		return
	}
	gun, ok := wc.Weapon.(*weapon.GravityGun)
	if !ok {
		line.Hidden = true
		return
	}
	session, grabbing := gun.Controller().Session()
	if !grabbing || session.Target.Body == nil {
		line.Hidden = true
		return
	}
	target := session.Target.Body.Position()
	muzzle := cp.Vector{X: wt.X, Y: wt.Y}
	if d := dir.Normalize(); dir.Length() > 0 {
		muzzle = muzzle.Add(d.Mult(wc.MuzzleLength))
	}
	line.StartX, line.StartY = muzzle.X, muzzle.Y
	line.EndX, line.EndY = target.X, target.Y
	if line.Color == nil {
		line.Color = beamColor
	}
	if line.Width <= 0 {
		line.Width = 2
	}
	line.Hidden = false
}
