package present

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
)

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW)
	primaryPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	secondaryPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	interactPressed := inpututil.IsKeyJustPressed(ebiten.KeyE)

	camX, camY, zoom := cameraTransform(w)
	cx, cy := ebiten.CursorPosition()
	cursorX := float64(cx)/zoom + camX
	cursorY := float64(cy)/zoom + camY
	hasCursor := true

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	stickX, stickY := 0.0, 0.0
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}

		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		primaryPressed = primaryPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		secondaryPressed = secondaryPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		interactPressed = interactPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			stickX, stickY = rx, ry
			hasCursor = false
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.Jump = jump
		input.JumpPressed = jumpPressed
		input.PrimaryPressed = primaryPressed
		input.SecondaryPressed = secondaryPressed
		input.InteractPressed = interactPressed
		input.CursorX = cursorX
		input.CursorY = cursorY
		input.HasCursor = hasCursor

		aim, ok := ecs.Get(w, e, component.AimComponent.Kind())
		if !ok {
			return
		}
		if !hasCursor {
			aim.DirX, aim.DirY = stickX, stickY
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		dx := cursorX - (t.X + aim.OriginOffsetX)
		dy := cursorY - (t.Y + aim.OriginOffsetY)
		if l := math.Hypot(dx, dy); l > 1e-6 {
			aim.DirX, aim.DirY = dx/l, dy/l
		}
	})
}
