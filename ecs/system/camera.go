package system

import (
	"math"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera's top-left corner toward the view that centres its
// target, clamped to the level bounds.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !w.IsAlive(cs.camEntity) {
		cs.camEntity = 0
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}
	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, camComp.TargetName)
	}
	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	zoom := camComp.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	viewW := camComp.ViewWidth / zoom
	viewH := camComp.ViewHeight / zoom

	desiredX := targetTransform.X - viewW/2
	desiredY := targetTransform.Y - viewH/2
	if bounds, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, bounds, component.LevelBoundsComponent.Kind()); ok {
			desiredX = clampView(desiredX, viewW, b.Width)
			desiredY = clampView(desiredY, viewH, b.Height)
		}
	}

	smooth := camComp.Smoothness
	if smooth <= 0 || smooth >= 1 {
		camTransform.X, camTransform.Y = desiredX, desiredY
		return
	}
	camTransform.X += (desiredX - camTransform.X) * smooth
	camTransform.Y += (desiredY - camTransform.Y) * smooth
}

func clampView(pos, view, extent float64) float64 {
	if extent <= 0 {
		return pos
	}
	if view >= extent {
		return (extent - view) / 2
	}
	return math.Max(0, math.Min(pos, extent-view))
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" || name == "" {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
