package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/prefabs"
)

var defaultPlatformColor = color.RGBA{R: 58, G: 63, B: 75, A: 255}

// Level is a loaded room: its bounds entity, platforms and everything the
// spawner placed.
type Level struct {
	Spec      prefabs.LevelSpec
	Bounds    ecs.Entity
	Platforms []ecs.Entity
	Entities  []ecs.Entity
}

// NewLevel loads levelPath and builds it into w. When the level sets a
// gravity and env has a space, the space takes it.
func NewLevel(w *ecs.World, levelPath string, env Env) (*Level, error) {
	spec, err := prefabs.LoadLevelSpec(levelPath)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	if spec.Gravity != nil && env.Space != nil {
		env.Space.SetGravity(cp.Vector{X: 0, Y: *spec.Gravity})
	}

	lvl := &Level{Spec: spec}
	lvl.Bounds = ecs.CreateEntity(w)
	if err := ecs.Add(w, lvl.Bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  spec.Width,
		Height: spec.Height,
	}); err != nil {
		return nil, fmt.Errorf("level: add bounds: %w", err)
	}

	fill := spec.Color.RGBA8(defaultPlatformColor)
	for i, p := range spec.Platforms {
		e, err := newPlatform(w, p, fill)
		if err != nil {
			lvl.destroy(w)
			return nil, fmt.Errorf("level: platform %d: %w", i, err)
		}
		lvl.Platforms = append(lvl.Platforms, e)
	}

	spawner := &Spawner{World: w, Env: env}
	lvl.Entities, err = spawner.SpawnAll(spec.Entities)
	if err != nil {
		lvl.destroy(w)
		return nil, fmt.Errorf("level: %w", err)
	}
	return lvl, nil
}

func (l *Level) destroy(w *ecs.World) {
	for _, e := range l.Entities {
		DestroyEntity(w, e)
	}
	for _, e := range l.Platforms {
		ecs.DestroyEntity(w, e)
	}
	ecs.DestroyEntity(w, l.Bounds)
}

func newPlatform(w *ecs.World, p prefabs.PlatformSpec, fill color.RGBA) (ecs.Entity, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return 0, fmt.Errorf("size %vx%v must be positive", p.Width, p.Height)
	}
	e := ecs.CreateEntity(w)
	add := func(err error) error {
		if err != nil {
			ecs.DestroyEntity(w, e)
		}
		return err
	}
	if err := add(ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      p.X + p.Width/2,
		Y:      p.Y + p.Height/2,
		ScaleX: 1,
		ScaleY: 1,
	})); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    p.Width,
		Height:   p.Height,
		Friction: 0.9,
		Static:   true,
	})); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  p.Width,
		Height: p.Height,
		Color:  fill,
	})); err != nil {
		return 0, err
	}
	return e, nil
}
