package weapon_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/weapon"
	"github.com/milk9111/gravgun/weapon/mocks"
	"go.uber.org/mock/gomock"
)

func TestCarrierPickupAndDrop(t *testing.T) {
	mc := gomock.NewController(t)
	w := mocks.NewMockWeapon(mc)
	c := weapon.NewCarrier()

	var picked, dropped []weapon.ActorID
	c.OnPickup = func(id weapon.ActorID, _ weapon.Weapon) { picked = append(picked, id) }
	c.OnDrop = func(id weapon.ActorID, _ weapon.Weapon) { dropped = append(dropped, id) }

	c.Drop()
	if len(dropped) != 0 {
		t.Fatalf("drop while empty must be a no-op")
	}

	w.EXPECT().OnPickup(c)
	c.OverlapBegin(5)
	c.Pickup(5, w)
	if id, got, ok := c.Equipped(); !ok || id != 5 || got != w {
		t.Fatalf("expected weapon 5 equipped, got %d %v %v", id, got, ok)
	}
	if _, ok := c.Candidate(); ok {
		t.Fatalf("pickup should clear the candidate pointing at the weapon")
	}

	// Re-picking the held weapon only re-binds.
	c.Pickup(5, w)

	w.EXPECT().OnDrop()
	c.Drop()
	c.Drop()
	if _, _, ok := c.Equipped(); ok {
		t.Fatalf("slot should be empty after drop")
	}
	if len(picked) != 1 || len(dropped) != 1 {
		t.Fatalf("hooks: picked=%v dropped=%v", picked, dropped)
	}
}

func TestCarrierPickupReplacesHeldWeapon(t *testing.T) {
	mc := gomock.NewController(t)
	oldW := mocks.NewMockWeapon(mc)
	newW := mocks.NewMockWeapon(mc)
	c := weapon.NewCarrier()

	oldW.EXPECT().OnPickup(gomock.Any())
	c.Pickup(1, oldW)

	gomock.InOrder(
		oldW.EXPECT().OnDrop(),
		newW.EXPECT().OnPickup(c),
	)
	c.Pickup(2, newW)
	if id, _, _ := c.Equipped(); id != 2 {
		t.Fatalf("expected weapon 2, got %d", id)
	}
}

func TestCarrierIgnoresNilWeapon(t *testing.T) {
	c := weapon.NewCarrier()
	c.Pickup(3, nil)
	if _, _, ok := c.Equipped(); ok {
		t.Fatalf("nil weapon must not be equipped")
	}
	c.Primary()
	c.Secondary()
	c.Update(1.0 / 60.0)
}

func TestCarrierCandidate(t *testing.T) {
	mc := gomock.NewController(t)
	w := mocks.NewMockWeapon(mc)
	w.EXPECT().OnPickup(gomock.Any()).AnyTimes()

	tests := []struct {
		name   string
		setup  func(c *weapon.Carrier)
		want   weapon.ActorID
		wantOK bool
	}{
		{name: "begin", setup: func(c *weapon.Carrier) { c.OverlapBegin(4) }, want: 4, wantOK: true},
		{name: "latest_wins", setup: func(c *weapon.Carrier) { c.OverlapBegin(4); c.OverlapBegin(8) }, want: 8, wantOK: true},
		{name: "end_clears", setup: func(c *weapon.Carrier) { c.OverlapBegin(4); c.OverlapEnd(4) }},
		{name: "end_other_keeps", setup: func(c *weapon.Carrier) { c.OverlapBegin(4); c.OverlapEnd(9) }, want: 4, wantOK: true},
		{name: "zero_ignored", setup: func(c *weapon.Carrier) { c.OverlapBegin(0) }},
		{name: "equipped_ignored", setup: func(c *weapon.Carrier) { c.Pickup(6, w); c.OverlapBegin(6) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := weapon.NewCarrier()
			tc.setup(c)
			got, ok := c.Candidate()
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("expected candidate %d/%v, got %d/%v", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}

func TestCarrierInteract(t *testing.T) {
	mc := gomock.NewController(t)
	w := mocks.NewMockWeapon(mc)
	c := weapon.NewCarrier()

	resolve := func(id weapon.ActorID) (weapon.Weapon, bool) {
		if id == 7 {
			return w, true
		}
		return nil, false
	}

	c.Interact(resolve)
	if _, _, ok := c.Equipped(); ok {
		t.Fatalf("interact with no candidate must do nothing")
	}

	c.OverlapBegin(3)
	c.Interact(resolve)
	if _, _, ok := c.Equipped(); ok {
		t.Fatalf("unresolvable candidate must not be picked up")
	}

	w.EXPECT().OnPickup(c)
	c.OverlapBegin(7)
	c.Interact(resolve)
	if id, _, ok := c.Equipped(); !ok || id != 7 {
		t.Fatalf("expected weapon 7 after interact")
	}

	w.EXPECT().OnDrop()
	c.Interact(resolve)
	if _, _, ok := c.Equipped(); ok {
		t.Fatalf("interact while holding should drop")
	}
}

func TestCarrierRoutesActions(t *testing.T) {
	mc := gomock.NewController(t)
	w := mocks.NewMockWeapon(mc)
	c := weapon.NewCarrier()

	w.EXPECT().OnPickup(c)
	c.Pickup(1, w)

	gomock.InOrder(
		w.EXPECT().PrimaryAction(),
		w.EXPECT().SecondaryAction(),
	)
	c.Primary()
	c.Secondary()
	// MockWeapon has no Update, so nothing is stepped.
	c.Update(1.0 / 60.0)
}

func TestCarrierAimSource(t *testing.T) {
	c := weapon.NewCarrier()
	if _, dir := c.Aim(); dir != (cp.Vector{X: 1}) {
		t.Fatalf("default aim should be +X, got %v", dir)
	}

	c.SetAim(cp.Vector{X: 1, Y: 2}, cp.Vector{Y: 4}, cp.Vector{X: 9})
	origin, dir := c.Aim()
	if origin != (cp.Vector{X: 1, Y: 2}) || dir != (cp.Vector{Y: 1}) || c.CarryAnchor() != (cp.Vector{X: 9}) {
		t.Fatalf("unexpected aim %v %v %v", origin, dir, c.CarryAnchor())
	}

	c.SetAim(cp.Vector{}, cp.Vector{}, cp.Vector{})
	if _, dir := c.Aim(); dir != (cp.Vector{Y: 1}) {
		t.Fatalf("zero direction should keep the last aim, got %v", dir)
	}
}
