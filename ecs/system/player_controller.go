package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/weapon"
)

const (
	playerMoveSpeed  = 260.0
	playerJumpSpeed  = 600.0
	groundedEpsilon  = 1.0
	groundProbeDepth = 3.0
)

// groundFilter is what a player can stand on.
var groundFilter = cp.ShapeFilter{
	Categories: uint(weapon.CategoryPlayer),
	Mask:       uint(weapon.CategoryWorld | weapon.CategoryProp | weapon.CategoryDebris),
}

type PlayerControllerSystem struct {
	space *cp.Space
}

// NewPlayerControllerSystem probes space for ground contact. With a nil
// space a resting vertical velocity counts as grounded.
func NewPlayerControllerSystem(space *cp.Space) *PlayerControllerSystem {
	return &PlayerControllerSystem{space: space}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, player *component.Player, input *component.Input, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}

		vel := bodyComp.Body.Velocity()
		player.Grounded = p.grounded(bodyComp, vel)
		if player.Grounded {
			player.GroundGrace = player.CoyoteFrames
		} else if player.GroundGrace > 0 {
			player.GroundGrace--
		}

		speed := player.MoveSpeed
		if speed <= 0 {
			speed = playerMoveSpeed
		}
		vel.X = input.MoveX * speed

		if input.JumpPressed && (player.Grounded || player.GroundGrace > 0) {
			jump := player.JumpSpeed
			if jump <= 0 {
				jump = playerJumpSpeed
			}
			vel.Y = -jump
			player.GroundGrace = 0
		}

		bodyComp.Body.SetVelocityVector(vel)
		bodyComp.Body.SetAngle(0)
		bodyComp.Body.SetAngularVelocity(0)
	})
}

func (p *PlayerControllerSystem) grounded(bodyComp *component.PhysicsBody, vel cp.Vector) bool {
	if p.space == nil {
		return math.Abs(vel.Y) < groundedEpsilon
	}
	if vel.Y < -groundedEpsilon {
		return false
	}
	_, height := colliderSize(bodyComp)
	pos := bodyComp.Body.Position()
	from := cp.Vector{X: pos.X, Y: pos.Y + height/2 - 1}
	to := cp.Vector{X: pos.X, Y: pos.Y + height/2 + groundProbeDepth}
	info := p.space.SegmentQueryFirst(from, to, 0, groundFilter)
	return info.Shape != nil && info.Shape.Body() != bodyComp.Body
}
