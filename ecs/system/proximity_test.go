package system

import (
	"testing"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/weapon"
)

func TestCircleOverlapsBox(t *testing.T) {
	tests := []struct {
		name           string
		cx, cy, r      float64
		bx, by, bw, bh float64
		want           bool
	}{
		{name: "inside", cx: 0, cy: 0, r: 5, bx: 0, by: 0, bw: 10, bh: 10, want: true},
		{name: "touching_edge", cx: 0, cy: 0, r: 5, bx: 10, by: 0, bw: 10, bh: 10, want: true},
		{name: "apart", cx: 0, cy: 0, r: 4, bx: 10, by: 0, bw: 10, bh: 10, want: false},
		{name: "corner_miss", cx: 0, cy: 0, r: 6, bx: 10, by: 10, bw: 10, bh: 10, want: false},
		{name: "corner_hit", cx: 0, cy: 0, r: 8, bx: 10, by: 10, bw: 10, bh: 10, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := circleOverlapsBox(tc.cx, tc.cy, tc.r, tc.bx, tc.by, tc.bw, tc.bh); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProximitySystemEdges(t *testing.T) {
	w := ecs.NewWorld()
	c := weapon.NewCarrier()
	ce := ecs.CreateEntity(w)
	_ = ecs.Add(w, ce, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, ce, component.CarrierComponent.Kind(), &component.Carrier{Carrier: c, ReachRadius: 20})

	item := ecs.CreateEntity(w)
	it := &component.Transform{X: 15}
	_ = ecs.Add(w, item, component.TransformComponent.Kind(), it)
	_ = ecs.Add(w, item, component.InteractableComponent.Kind(), &component.Interactable{Width: 10, Height: 10})

	ps := NewProximitySystem()
	ps.Update(w)
	if id, ok := c.Candidate(); !ok || id != weapon.ActorID(item) {
		t.Fatalf("item in reach should be the candidate")
	}
	if evs := w.Events().Drain(); len(evs) != 1 || evs[0].Type != ecs.EventProximityEnter {
		t.Fatalf("expected one enter event, got %+v", evs)
	}

	ps.Update(w)
	if evs := w.Events().Drain(); len(evs) != 0 {
		t.Fatalf("staying in reach should not repeat events, got %+v", evs)
	}

	it.X = 100
	ps.Update(w)
	if _, ok := c.Candidate(); ok {
		t.Fatalf("leaving reach should clear the candidate")
	}
	if evs := w.Events().Drain(); len(evs) != 1 || evs[0].Type != ecs.EventProximityExit {
		t.Fatalf("expected one exit event, got %+v", evs)
	}

	it.X = 15
	ps.Update(w)
	ecs.DestroyEntity(w, item)
	ps.Update(w)
	if _, ok := c.Candidate(); ok {
		t.Fatalf("destroyed item should stop being the candidate")
	}
}
