package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/ecs/system"
	"github.com/milk9111/gravgun/weapon"
)

func writePrefab(t *testing.T, name, body string) {
	t.Helper()
	if err := os.MkdirAll("prefabs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("prefabs", name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildPlayer(t *testing.T) {
	w := ecs.NewWorld()
	ps := system.NewPhysicsSystem(0)
	e, err := NewPlayerAt(w, Env{Space: ps.Space()}, 100, 200)
	if err != nil {
		t.Fatalf("build player: %v", err)
	}

	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) || !ecs.Has(w, e, component.InputComponent.Kind()) {
		t.Fatalf("player should be tagged and take input")
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 100 || tr.Y != 200 {
		t.Fatalf("transform = %+v", tr)
	}
	carrier, ok := ecs.Get(w, e, component.CarrierComponent.Kind())
	if !ok || carrier.Carrier == nil || carrier.ReachRadius <= 0 {
		t.Fatalf("player should carry weapons: %+v", carrier)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if body.Category != weapon.CategoryPlayer || !body.NoRotation {
		t.Fatalf("physics body = %+v", body)
	}
	audioComp, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if audioComp.Index("pickup") < 0 || len(audioComp.Play) != len(audioComp.Names) {
		t.Fatalf("audio = %+v", audioComp)
	}
}

func TestPlayerStartsArmed(t *testing.T) {
	w := ecs.NewWorld()
	ps := system.NewPhysicsSystem(0)
	e, err := NewPlayer(w, Env{Space: ps.Space()})
	if err != nil {
		t.Fatalf("build player: %v", err)
	}

	carrier, _ := ecs.Get(w, e, component.CarrierComponent.Kind())
	id, held, ok := carrier.Carrier.Equipped()
	if !ok {
		t.Fatalf("player should start with a weapon")
	}
	gun, ok := held.(*weapon.GravityGun)
	if !ok || !gun.Held() {
		t.Fatalf("starting weapon = %T held=%v", held, ok)
	}
	if gun.PrimarySound != "fire_primary" || gun.SecondarySound != "fire_secondary" {
		t.Fatalf("action sounds = %q %q", gun.PrimarySound, gun.SecondarySound)
	}
	we := ecs.Entity(id)
	wc, _ := ecs.Get(w, we, component.WeaponComponent.Kind())
	body, _ := ecs.Get(w, we, component.PhysicsBodyComponent.Kind())
	if wc.Holder != uint64(e) || !body.Carried {
		t.Fatalf("starting weapon should be held: holder=%d carried=%v", wc.Holder, body.Carried)
	}

	DestroyEntity(w, e)
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("destroying the player should take its weapon, %d left", n)
	}
}

func TestPlayerStartingWeaponNeedsSpace(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewPlayer(w, Env{}); err == nil {
		t.Fatalf("expected an error without a physics space")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed build left %d entities", n)
	}
}

func TestEquipRefusesHeldWeapon(t *testing.T) {
	w := ecs.NewWorld()
	ps := system.NewPhysicsSystem(0)
	env := Env{Space: ps.Space()}
	a, err := NewPlayer(w, env)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewPlayer(w, env)
	if err != nil {
		t.Fatal(err)
	}
	carrierA, _ := ecs.Get(w, a, component.CarrierComponent.Kind())
	id, _, _ := carrierA.Carrier.Equipped()

	if err := Equip(w, b, ecs.Entity(id)); err == nil {
		t.Fatalf("equipping another carrier's weapon should fail")
	}
	if err := Equip(w, ecs.Entity(id), ecs.Entity(id)); err == nil {
		t.Fatalf("a weapon entity has no carrier")
	}
	if err := Equip(w, a, ecs.Entity(id)); err != nil {
		t.Fatalf("re-equipping the held weapon: %v", err)
	}
}

func TestBuildCratePrefabs(t *testing.T) {
	tests := []struct {
		name   string
		build  func(w *ecs.World) (ecs.Entity, error)
		frozen bool
	}{
		{name: "crate", build: func(w *ecs.World) (ecs.Entity, error) { return NewCrate(w, 5, 6) }},
		{name: "frozen_crate", build: func(w *ecs.World) (ecs.Entity, error) { return NewFrozenCrate(w, 5, 6) }, frozen: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := tc.build(w)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if body.Category != weapon.CategoryProp || body.Frozen != tc.frozen {
				t.Fatalf("physics body = %+v", body)
			}
			if !ecs.Has(w, e, component.PropTagComponent.Kind()) {
				t.Fatalf("crate should be tagged as a prop")
			}
		})
	}
}

func TestGravityGunNeedsSpace(t *testing.T) {
	w := ecs.NewWorld()
	if _, _, err := NewGravityGun(w, Env{}, 0, 0); err == nil {
		t.Fatalf("expected an error without a physics space")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed build left %d entities", n)
	}
}

func TestGravityGunReportsGrabEvents(t *testing.T) {
	w := ecs.NewWorld()
	ps := system.NewPhysicsSystem(0)
	gunEnt, gun, err := NewGravityGun(w, Env{Space: ps.Space()}, -100, -100)
	if err != nil {
		t.Fatalf("build gun: %v", err)
	}
	crate, err := NewCrate(w, 200, 0)
	if err != nil {
		t.Fatalf("build crate: %v", err)
	}
	ps.Update(w)

	ctrl := gun.Controller()
	if !ctrl.TryStartGrab(cp.Vector{}, cp.Vector{X: 1}) {
		t.Fatalf("grab should hit the crate")
	}
	ctrl.Release()

	events := w.Events().Drain()
	if len(events) != 2 {
		t.Fatalf("expected grab and release events, got %+v", events)
	}
	start, ok := events[0].Data.(ecs.GrabEvent)
	if events[0].Type != ecs.EventGrabStart || !ok || start.Weapon != gunEnt || start.Target != crate {
		t.Fatalf("grab event = %+v", events[0])
	}
	release, ok := events[1].Data.(ecs.GrabEvent)
	if events[1].Type != ecs.EventGrabRelease || !ok || release.Reason != "manual" || release.Target != crate {
		t.Fatalf("release event = %+v", events[1])
	}
}

func TestBuildEntityErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	writePrefab(t, "unknown.yaml", "name: x\ncomponents:\n  transform: {}\n  hovercraft: {}\n")
	writePrefab(t, "empty.yaml", "name: x\n")
	writePrefab(t, "bad_category.yaml", "name: x\ncomponents:\n  physics_body:\n    category: lava\n")
	writePrefab(t, "bad_weapon.yaml", "name: x\ncomponents:\n  weapon:\n    kind: slingshot\n")

	tests := []string{"unknown.yaml", "empty.yaml", "bad_category.yaml", "bad_weapon.yaml", "missing.yaml"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			if _, err := BuildEntity(w, name); err == nil {
				t.Fatalf("expected an error")
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("failed build left %d entities", n)
			}
		})
	}
}

func TestBuildEntityNilWorld(t *testing.T) {
	if _, err := BuildEntity(nil, "crate.yaml"); err == nil {
		t.Fatalf("expected an error for a nil world")
	}
}
