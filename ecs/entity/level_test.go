package entity

import (
	"testing"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/ecs/system"
	"github.com/milk9111/gravgun/prefabs"
)

func TestNewLevelBuildsLayout(t *testing.T) {
	w := ecs.NewWorld()
	ps := system.NewPhysicsSystem(0)
	lvl, err := NewLevel(w, "level.yaml", Env{Space: ps.Space(), Effects: system.NewEffectSystem(w, nil)})
	if err != nil {
		t.Fatalf("load level: %v", err)
	}

	bounds, ok := ecs.Get(w, lvl.Bounds, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width != lvl.Spec.Width || bounds.Height != lvl.Spec.Height {
		t.Fatalf("bounds = %+v", bounds)
	}
	if len(lvl.Platforms) != len(lvl.Spec.Platforms) {
		t.Fatalf("platforms = %d, want %d", len(lvl.Platforms), len(lvl.Spec.Platforms))
	}

	want := 0
	for _, ent := range lvl.Spec.Entities {
		if ent.Count > 0 {
			want += ent.Count
		} else {
			want++
		}
	}
	if len(lvl.Entities) != want {
		t.Fatalf("spawned %d entities, want %d", len(lvl.Entities), want)
	}
	if g := ps.Space().Gravity(); g.Y != *lvl.Spec.Gravity {
		t.Fatalf("gravity = %v", g)
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		t.Fatalf("level should spawn a player")
	}
	if carrier, _ := ecs.Get(w, player, component.CarrierComponent.Kind()); carrier == nil {
		t.Fatalf("player should carry")
	} else if _, _, armed := carrier.Carrier.Equipped(); !armed {
		t.Fatalf("player should spawn armed")
	}
	if _, ok := ecs.First(w, component.WeaponComponent.Kind()); !ok {
		t.Fatalf("level should spawn a weapon")
	}
	if _, ok := ecs.First(w, component.CameraComponent.Kind()); !ok {
		t.Fatalf("level should spawn a camera")
	}

	ps.Update(w)
	for _, e := range lvl.Platforms {
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if body.Shape == nil || !body.Static {
			t.Fatalf("platform %v should be a static shape", e)
		}
	}
}

func TestSpawnerRepeatsAndRollsBack(t *testing.T) {
	w := ecs.NewWorld()
	s := &Spawner{World: w}

	ents, err := s.SpawnAll([]prefabs.LevelEntitySpec{{Prefab: "crate.yaml", X: 10, Y: 5, Count: 3, DX: 20}})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if len(ents) != 3 {
		t.Fatalf("spawned %d", len(ents))
	}
	last, _ := ecs.Get(w, ents[2], component.TransformComponent.Kind())
	if last.X != 50 || last.Y != 5 {
		t.Fatalf("third crate at (%v,%v)", last.X, last.Y)
	}

	before := len(ecs.Entities(w))
	_, err = s.SpawnAll([]prefabs.LevelEntitySpec{
		{Prefab: "crate.yaml", Count: 2},
		{Prefab: "gravity_gun.yaml"},
	})
	if err == nil {
		t.Fatalf("gun without a space should fail")
	}
	if after := len(ecs.Entities(w)); after != before {
		t.Fatalf("failed spawn left entities behind: %d -> %d", before, after)
	}

	armed := &Spawner{World: w, Env: Env{Space: system.NewPhysicsSystem(0).Space()}}
	_, err = armed.SpawnAll([]prefabs.LevelEntitySpec{
		{Prefab: "player.yaml"},
		{Prefab: "missing.yaml"},
	})
	if err == nil {
		t.Fatalf("missing prefab should fail")
	}
	if after := len(ecs.Entities(w)); after != before {
		t.Fatalf("rollback should take the player's weapon too: %d -> %d", before, after)
	}
}
