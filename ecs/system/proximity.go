package system

import (
	"math"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/weapon"
)

type proximityPair struct {
	carrier ecs.Entity
	actor   ecs.Entity
}

// ProximitySystem tells carriers which interactables are in reach. Only
// edges are reported, so a carrier's candidate is whatever entered last.
type ProximitySystem struct {
	inside map[proximityPair]bool
}

func NewProximitySystem() *ProximitySystem {
	return &ProximitySystem{inside: make(map[proximityPair]bool)}
}

func (ps *ProximitySystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	seen := make(map[proximityPair]bool, len(ps.inside))
	ecs.ForEach2(w, component.CarrierComponent.Kind(), component.TransformComponent.Kind(), func(ce ecs.Entity, carrier *component.Carrier, ct *component.Transform) {
		if carrier.Carrier == nil {
			return
		}
		ecs.ForEach2(w, component.InteractableComponent.Kind(), component.TransformComponent.Kind(), func(ae ecs.Entity, it *component.Interactable, at *component.Transform) {
			if ae == ce || heldByAnyone(w, ae) {
				return
			}
			if !circleOverlapsBox(ct.X, ct.Y, carrier.ReachRadius, at.X, at.Y, it.Width, it.Height) {
				return
			}
			pair := proximityPair{carrier: ce, actor: ae}
			seen[pair] = true
			if ps.inside[pair] {
				return
			}
			ps.inside[pair] = true
			carrier.Carrier.OverlapBegin(weapon.ActorID(ae))
			w.Events().Push(ecs.Event{Type: ecs.EventProximityEnter, Data: ecs.ProximityEvent{Carrier: ce, Actor: ae}})
		})
	})

	for pair := range ps.inside {
		if seen[pair] {
			continue
		}
		delete(ps.inside, pair)
		if carrier, ok := ecs.Get(w, pair.carrier, component.CarrierComponent.Kind()); ok && carrier.Carrier != nil {
			carrier.Carrier.OverlapEnd(weapon.ActorID(pair.actor))
		}
		w.Events().Push(ecs.Event{Type: ecs.EventProximityExit, Data: ecs.ProximityEvent{Carrier: pair.carrier, Actor: pair.actor}})
	}
}

func heldByAnyone(w *ecs.World, e ecs.Entity) bool {
	wc, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	return ok && wc.Holder != 0
}

// circleOverlapsBox tests a circle against an axis-aligned box centred on
// (bx, by).
func circleOverlapsBox(cx, cy, r, bx, by, bw, bh float64) bool {
	if r < 0 {
		return false
	}
	nx := math.Max(bx-bw/2, math.Min(cx, bx+bw/2))
	ny := math.Max(by-bh/2, math.Min(cy, by+bh/2))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}
