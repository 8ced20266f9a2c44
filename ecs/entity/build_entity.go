package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/ecs/system"
	"github.com/milk9111/gravgun/prefabs"
	"github.com/milk9111/gravgun/weapon"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

// Env carries the runtime services that some components are built against.
// Prefabs without a weapon build fine with a zero Env.
type Env struct {
	Space    *cp.Space
	Effects  weapon.EffectSpawner
	Recorder weapon.TraceRecorder
}

type buildContext struct {
	PrefabPath     string
	Env            Env
	StartingWeapon string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"prop_tag":     addPropTag,
	"player":       addPlayer,
	"input":        addInput,
	"aim":          addAim,
	"carrier":      addCarrier,
	"transform":    addTransform,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"line_render":  addLineRender,
	"camera":       addCamera,
	"audio":        addAudio,
	"physics_body": addPhysicsBody,
	"interactable": addInteractable,
	"weapon":       addWeapon,
}

var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"prop_tag",
	"player",
	"input",
	"aim",
	"carrier",
	"transform",
	"sprite",
	"render_layer",
	"line_render",
	"camera",
	"audio",
	"physics_body",
	"interactable",
	"weapon",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return BuildEntityWith(w, prefabPath, Env{})
}

func BuildEntityWith(w *ecs.World, prefabPath string, env Env) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Env: env}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, names)
	}

	if ctx.StartingWeapon != "" {
		if err := equipStartingWeapon(w, e, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: starting weapon: %w", prefabPath, err)
		}
	}

	return e, nil
}

// equipStartingWeapon builds the carrier's starting weapon on top of it and
// puts it in the slot.
func equipStartingWeapon(w *ecs.World, e ecs.Entity, ctx *buildContext) error {
	we, err := BuildEntityWith(w, ctx.StartingWeapon, ctx.Env)
	if err != nil {
		return err
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		if err := SetEntityTransform(w, we, t.X, t.Y, 0); err != nil {
			DestroyEntity(w, we)
			return err
		}
	}
	if err := Equip(w, e, we); err != nil {
		DestroyEntity(w, we)
		return err
	}
	return nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addPropTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PropTagComponent.Kind(), &component.PropTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    spec.MoveSpeed,
		JumpSpeed:    spec.JumpSpeed,
		CoyoteFrames: spec.CoyoteFrames,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type aimSpec = prefabs.AimComponentSpec

func addAim(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[aimSpec](raw)
	if err != nil {
		return fmt.Errorf("decode aim spec: %w", err)
	}
	if spec.DirX == 0 && spec.DirY == 0 {
		spec.DirX = 1
	}
	return ecs.Add(w, e, component.AimComponent.Kind(), &component.Aim{
		DirX:          spec.DirX,
		DirY:          spec.DirY,
		OriginOffsetX: spec.OriginOffsetX,
		OriginOffsetY: spec.OriginOffsetY,
		AnchorOffsetX: spec.AnchorOffsetX,
		AnchorOffsetY: spec.AnchorOffsetY,
	})
}

type carrierSpec = prefabs.CarrierComponentSpec

func addCarrier(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[carrierSpec](raw)
	if err != nil {
		return fmt.Errorf("decode carrier spec: %w", err)
	}
	if spec.ReachRadius <= 0 {
		spec.ReachRadius = 40
	}
	ctx.StartingWeapon = spec.StartingWeapon
	return ecs.Add(w, e, component.CarrierComponent.Kind(), &component.Carrier{
		Carrier:     weapon.NewCarrier(),
		ReachRadius: spec.ReachRadius,
		HoldOffsetX: spec.HoldOffsetX,
		HoldOffsetY: spec.HoldOffsetY,
	})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

var defaultSpriteColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	c := defaultSpriteColor
	if spec.Color != "" {
		c, err = prefabs.ParseColor(spec.Color)
		if err != nil {
			return fmt.Errorf("parse sprite color: %w", err)
		}
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:      spec.Width,
		Height:     spec.Height,
		Circle:     spec.Circle,
		Color:      c,
		OriginX:    spec.OriginX,
		OriginY:    spec.OriginY,
		FacingLeft: spec.FacingLeft,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type lineRenderSpec = prefabs.LineRenderComponentSpec

func addLineRender(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lineRenderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode line render spec: %w", err)
	}
	if spec.Width <= 0 {
		spec.Width = 1
	}
	c := color.Color(color.RGBA{R: 255, A: 255})
	if spec.Color != "" {
		parsed, err := prefabs.ParseColor(spec.Color)
		if err != nil {
			return fmt.Errorf("parse line render color: %w", err)
		}
		c = parsed
	}
	return ecs.Add(w, e, component.LineRenderComponent.Kind(), &component.LineRender{
		StartX:    spec.StartX,
		StartY:    spec.StartY,
		EndX:      spec.EndX,
		EndY:      spec.EndY,
		Width:     spec.Width,
		Color:     c,
		AntiAlias: spec.AntiAlias,
		Hidden:    spec.Hidden,
	})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Smoothness == 0 {
		spec.Smoothness = 0.15
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.TargetName,
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
		ViewWidth:  spec.ViewWidth,
		ViewHeight: spec.ViewHeight,
	})
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	specs, err := prefabs.DecodeComponentSpec[[]audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	a := &component.Audio{
		Names:  make([]string, 0, len(specs)),
		Volume: make([]float64, 0, len(specs)),
		Loop:   make([]bool, 0, len(specs)),
		Play:   make([]bool, len(specs)),
		Stop:   make([]bool, len(specs)),
	}
	for _, s := range specs {
		if s.Name == "" {
			return fmt.Errorf("audio entry without a name")
		}
		vol := s.Volume
		if vol <= 0 {
			vol = 1
		}
		a.Names = append(a.Names, s.Name)
		a.Volume = append(a.Volume, vol)
		a.Loop = append(a.Loop, s.Loop)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), a)
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	category, err := prefabs.ParseCategory(spec.Category)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:        spec.Width,
		Height:       spec.Height,
		Radius:       spec.Radius,
		Mass:         spec.Mass,
		Friction:     spec.Friction,
		Elasticity:   spec.Elasticity,
		OffsetX:      spec.OffsetX,
		OffsetY:      spec.OffsetY,
		Static:       spec.Static,
		AlignTopLeft: spec.AlignTopLeft,
		Category:     category,
		Frozen:       spec.Frozen,
		NoRotation:   spec.NoRotation,
	})
}

type interactableSpec = prefabs.InteractableComponentSpec

func addInteractable(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[interactableSpec](raw)
	if err != nil {
		return fmt.Errorf("decode interactable spec: %w", err)
	}
	return ecs.Add(w, e, component.InteractableComponent.Kind(), &component.Interactable{
		Width:  spec.Width,
		Height: spec.Height,
		Prompt: spec.Prompt,
	})
}

type weaponSpec = prefabs.WeaponComponentSpec

func addWeapon(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[weaponSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapon spec: %w", err)
	}
	name := spec.Name
	if name == "" {
		name = spec.Kind
	}

	var wpn weapon.Weapon
	switch spec.Kind {
	case "", "gravity_gun":
		gun, err := newGravityGun(w, e, name, spec.GravityGun, ctx.Env)
		if err != nil {
			return err
		}
		gun.PrimarySound = spec.PrimarySound
		gun.SecondarySound = spec.SecondarySound
		wpn = gun
	default:
		return fmt.Errorf("unknown weapon kind %q", spec.Kind)
	}

	return ecs.Add(w, e, component.WeaponComponent.Kind(), &component.Weapon{
		Weapon:       wpn,
		MuzzleLength: spec.MuzzleLength,
	})
}

// newGravityGun builds a gun on env's space and reports its grabs as world
// events from entity e.
func newGravityGun(w *ecs.World, e ecs.Entity, name string, spec prefabs.GravityGunSpec, env Env) (*weapon.GravityGun, error) {
	if env.Space == nil {
		return nil, fmt.Errorf("gravity gun %q needs a physics space", name)
	}
	cfg, err := spec.Config()
	if err != nil {
		return nil, err
	}
	gun, err := weapon.NewSpaceGravityGun(name, env.Space, cfg, env.Effects, system.Liveness(w))
	if err != nil {
		return nil, err
	}
	if env.Recorder != nil {
		gun.SetTraceRecorder(env.Recorder)
	}

	ctrl := gun.Controller()
	ctrl.OnGrab = func(s weapon.GrabSession) {
		w.Events().Push(ecs.Event{Type: ecs.EventGrabStart, Data: ecs.GrabEvent{
			Weapon: e,
			Target: ecs.Entity(s.Target.Actor),
		}})
	}
	ctrl.OnRelease = func(reason weapon.ReleaseReason, s weapon.GrabSession) {
		w.Events().Push(ecs.Event{Type: ecs.EventGrabRelease, Data: ecs.GrabEvent{
			Weapon: e,
			Target: ecs.Entity(s.Target.Actor),
			Reason: reason.String(),
		}})
	}
	return gun, nil
}
