package entity

import (
	"fmt"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/weapon"
)

// Equip puts the weapon on we into the carrier on ce and marks it held.
func Equip(w *ecs.World, ce, we ecs.Entity) error {
	carrierComp, ok := ecs.Get(w, ce, component.CarrierComponent.Kind())
	if !ok || carrierComp.Carrier == nil {
		return fmt.Errorf("equip: entity %v has no carrier", ce)
	}
	wc, ok := ecs.Get(w, we, component.WeaponComponent.Kind())
	if !ok || wc.Weapon == nil {
		return fmt.Errorf("equip: entity %v has no weapon", we)
	}
	if wc.Holder != 0 && wc.Holder != uint64(ce) {
		return fmt.Errorf("equip: weapon %v is held by %v", we, ecs.Entity(wc.Holder))
	}

	carrierComp.Carrier.Pickup(weapon.ActorID(we), wc.Weapon)
	wc.Holder = uint64(ce)
	if body, ok := ecs.Get(w, we, component.PhysicsBodyComponent.Kind()); ok {
		body.Carried = true
	}
	return nil
}

// DestroyEntity removes e along with any weapon it is holding.
func DestroyEntity(w *ecs.World, e ecs.Entity) {
	if carrierComp, ok := ecs.Get(w, e, component.CarrierComponent.Kind()); ok && carrierComp.Carrier != nil {
		if id, _, held := carrierComp.Carrier.Equipped(); held {
			carrierComp.Carrier.Drop()
			ecs.DestroyEntity(w, ecs.Entity(id))
		}
	}
	ecs.DestroyEntity(w, e)
}
