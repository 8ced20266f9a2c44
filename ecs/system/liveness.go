package system

import (
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/weapon"
)

// Liveness resolves weapon actor ids against w. Handles carry a generation,
// so an id from a destroyed entity never comes back alive.
func Liveness(w *ecs.World) weapon.Liveness {
	return weapon.LivenessFunc(func(id weapon.ActorID) bool {
		return w.IsAlive(ecs.Entity(id))
	})
}

func actorEntity(id weapon.ActorID) ecs.Entity {
	return ecs.Entity(id)
}
