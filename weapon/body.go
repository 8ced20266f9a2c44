package weapon

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ActorID identifies an actor owned by the host world. The ECS hands out its
// entity handles here; they carry a generation, so a destroyed actor's id
// never resolves again.
type ActorID uint64

// BodyRef is a non-owning link to a simulated body. The world may remove the
// body at any time, so holders re-check it every tick.
type BodyRef struct {
	Actor ActorID
	Body  *cp.Body
}

// Liveness reports whether an actor still exists.
type Liveness interface {
	Alive(id ActorID) bool
}

// LivenessFunc adapts a function to Liveness.
type LivenessFunc func(id ActorID) bool

func (f LivenessFunc) Alive(id ActorID) bool { return f(id) }

// Category is a physical object category, one bit per kind.
type Category uint

const (
	CategoryWorld Category = 1 << iota
	CategoryPlayer
	CategoryProp
	CategoryWeapon
	CategoryDebris
)

const allCategories = ^uint(0)

// ShapeFilter returns the filter a shape of category c should carry. It
// collides with everything; queries narrow by mask.
func (c Category) ShapeFilter() cp.ShapeFilter {
	cat := uint(c)
	if cat == 0 {
		cat = uint(CategoryWorld)
	}
	return cp.ShapeFilter{Categories: cat, Mask: allCategories}
}

// queryFilter matches only shapes whose category is in whitelist.
func queryFilter(whitelist Category) cp.ShapeFilter {
	return cp.ShapeFilter{Categories: allCategories, Mask: uint(whitelist)}
}

func unit(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}
