package entity

import (
	"fmt"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/weapon"
)

// NewGravityGun places a gravity gun pickup at x, y.
func NewGravityGun(w *ecs.World, env Env, x, y float64) (ecs.Entity, *weapon.GravityGun, error) {
	e, err := buildAt(w, "gravity_gun.yaml", env, x, y)
	if err != nil {
		return 0, nil, err
	}
	wc, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, nil, fmt.Errorf("gravity gun: prefab has no weapon")
	}
	gun, ok := wc.Weapon.(*weapon.GravityGun)
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, nil, fmt.Errorf("gravity gun: prefab weapon is %T", wc.Weapon)
	}
	return e, gun, nil
}

func NewCrate(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return buildAt(w, "crate.yaml", Env{}, x, y)
}

// NewFrozenCrate places a crate that hangs in place until a trace wakes it.
func NewFrozenCrate(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return buildAt(w, "frozen_crate.yaml", Env{}, x, y)
}

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml")
}

func buildAt(w *ecs.World, prefab string, env Env, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntityWith(w, prefab, env)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: override transform: %w", prefab, err)
	}
	return e, nil
}
