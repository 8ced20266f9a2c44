package weapon

import "github.com/jakecoffman/cp"

// Carrier is the character side: one weapon slot and one interact
// candidate. It is also the aim source it binds into whatever it holds.
type Carrier struct {
	equipped   Weapon
	equippedID ActorID

	candidate    ActorID
	hasCandidate bool

	origin cp.Vector
	dir    cp.Vector
	anchor cp.Vector

	OnPickup func(id ActorID, w Weapon)
	OnDrop   func(id ActorID, w Weapon)
}

func NewCarrier() *Carrier {
	return &Carrier{dir: cp.Vector{X: 1}}
}

// SetAim updates the ray and carry point that held weapons read.
func (c *Carrier) SetAim(origin, direction, carryAnchor cp.Vector) {
	c.origin = origin
	if d := unit(direction); d != (cp.Vector{}) {
		c.dir = d
	}
	c.anchor = carryAnchor
}

func (c *Carrier) Aim() (origin, direction cp.Vector) {
	return c.origin, c.dir
}

func (c *Carrier) CarryAnchor() cp.Vector {
	return c.anchor
}

// Equipped returns the held weapon and its actor.
func (c *Carrier) Equipped() (ActorID, Weapon, bool) {
	if c.equipped == nil {
		return 0, nil, false
	}
	return c.equippedID, c.equipped, true
}

func (c *Carrier) Candidate() (ActorID, bool) {
	return c.candidate, c.hasCandidate
}

// Pickup equips w. A different weapon already in the slot is dropped first.
func (c *Carrier) Pickup(id ActorID, w Weapon) {
	if w == nil {
		return
	}
	if c.equipped != nil {
		if c.equippedID == id {
			c.forgetCandidate(id)
			return
		}
		c.Drop()
	}

	c.equipped = w
	c.equippedID = id
	c.forgetCandidate(id)
	w.OnPickup(c)

	if c.OnPickup != nil {
		c.OnPickup(id, w)
	}
}

// Drop notifies the held weapon and empties the slot. No-op when empty.
func (c *Carrier) Drop() {
	if c.equipped == nil {
		return
	}
	w, id := c.equipped, c.equippedID
	w.OnDrop()
	c.equipped = nil
	c.equippedID = 0

	if c.OnDrop != nil {
		c.OnDrop(id, w)
	}
}

// Interact drops the held weapon, or picks up the candidate when it
// resolves to a weapon.
func (c *Carrier) Interact(resolve func(ActorID) (Weapon, bool)) {
	if c.equipped != nil {
		c.Drop()
		return
	}
	if !c.hasCandidate || resolve == nil {
		return
	}
	w, ok := resolve(c.candidate)
	if !ok || w == nil {
		return
	}
	c.Pickup(c.candidate, w)
}

func (c *Carrier) OverlapBegin(id ActorID) {
	if id == 0 {
		return
	}
	if c.equipped != nil && id == c.equippedID {
		return
	}
	c.candidate = id
	c.hasCandidate = true
}

func (c *Carrier) OverlapEnd(id ActorID) {
	c.forgetCandidate(id)
}

func (c *Carrier) Primary() {
	if c.equipped != nil {
		c.equipped.PrimaryAction()
	}
}

func (c *Carrier) Secondary() {
	if c.equipped != nil {
		c.equipped.SecondaryAction()
	}
}

// Update steps the held weapon when it needs per-tick work.
func (c *Carrier) Update(dt float64) {
	if u, ok := c.equipped.(Updater); ok {
		u.Update(dt)
	}
}

func (c *Carrier) forgetCandidate(id ActorID) {
	if c.hasCandidate && c.candidate == id {
		c.candidate = 0
		c.hasCandidate = false
	}
}
