package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/weapon"
)

const (
	// StepRate is the fixed simulation rate in ticks per second. It matches
	// ebiten's default TPS.
	StepRate = 60

	DefaultGravity = 900.0
)

type PhysicsSystem struct {
	space    *cp.Space
	dt       float64
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body    *cp.Body
	shapes  []*cp.Shape
	static  bool
	carried bool
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		space:    space,
		dt:       1.0 / StepRate,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
	ps.syncCarried(w)

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil {
				bodyComp.Body = info.body
				bodyComp.Shape = info.shapes[0]
			}
			return
		}

		info := ps.createBodyInfo(e, transform, bodyComp)
		if info == nil {
			return
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	})
}

// bodyCenter is where the collider's centre sits for a transform.
func bodyCenter(transform *component.Transform, bodyComp *component.PhysicsBody) (cp.Vector, float64, float64) {
	width, height := colliderSize(bodyComp)
	x := transform.X + bodyComp.OffsetX
	y := transform.Y + bodyComp.OffsetY
	if bodyComp.AlignTopLeft {
		x += width / 2
		y += height / 2
	}
	return cp.Vector{X: x, Y: y}, width, height
}

func colliderSize(bodyComp *component.PhysicsBody) (float64, float64) {
	if bodyComp.Radius > 0 {
		return bodyComp.Radius * 2, bodyComp.Radius * 2
	}
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 32, 32
	}
	return width, height
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	center, width, height := bodyCenter(transform, bodyComp)
	radius := bodyComp.Radius
	actor := weapon.ActorID(e)

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, center)
		} else {
			bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		ps.configureShape(shape, bodyComp, actor)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	var moment float64
	if radius > 0 {
		moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, width, height)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(center)
	body.SetAngle(transform.Rotation)
	body.UserData = actor

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	// Mass on the shape lets a frozen body regain it when woken.
	shape.SetMass(mass)
	ps.configureShape(shape, bodyComp, actor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	if bodyComp.NoRotation {
		body.SetMoment(math.Inf(1))
	}
	if bodyComp.Frozen || bodyComp.Carried {
		body.SetType(cp.BODY_KINEMATIC)
	}

	info := &bodyInfo{body: body, shapes: []*cp.Shape{shape}}
	if bodyComp.Carried {
		setSensors(info, true)
		info.carried = true
	}
	return info
}

func (ps *PhysicsSystem) configureShape(shape *cp.Shape, bodyComp *component.PhysicsBody, actor weapon.ActorID) {
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetFilter(bodyComp.Category.ShapeFilter())
	shape.UserData = actor
}

// syncCarried moves carried bodies onto their transforms and flips bodies
// between carried and free as the flag changes.
func (ps *PhysicsSystem) syncCarried(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil || info.static {
			return
		}
		switch {
		case bodyComp.Carried && !info.carried:
			info.body.SetType(cp.BODY_KINEMATIC)
			setSensors(info, true)
			info.carried = true
		case !bodyComp.Carried && info.carried:
			info.body.SetType(cp.BODY_DYNAMIC)
			info.body.SetVelocityVector(cp.Vector{})
			setSensors(info, false)
			info.carried = false
		}
		if info.carried {
			center, _, _ := bodyCenter(transform, bodyComp)
			info.body.SetPosition(center)
			info.body.SetVelocityVector(cp.Vector{})
		}
	})
}

func setSensors(info *bodyInfo, sensor bool) {
	for _, shape := range info.shapes {
		shape.SetSensor(sensor)
	}
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	worldW, worldH := bounds.Width, bounds.Height
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetFilter(weapon.CategoryWorld.ShapeFilter())
		shape.UserData = weapon.ActorID(boundsEntity)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}
	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static || bodyComp.Carried {
			return
		}
		pos := bodyComp.Body.Position()
		width, height := colliderSize(bodyComp)
		if bodyComp.AlignTopLeft {
			transform.X = pos.X - width/2.0 - bodyComp.OffsetX
			transform.Y = pos.Y - height/2.0 - bodyComp.OffsetY
		} else {
			transform.X = pos.X - bodyComp.OffsetX
			transform.Y = pos.Y - bodyComp.OffsetY
		}
		transform.Rotation = bodyComp.Body.Angle()
	})
}

// cleanupEntities drops simulation state for entities that died or lost
// their body. Joints on a dying body go first, so nothing that still holds a
// joint handle sees a constraint to a body outside the space.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}
		ps.removeBodyInfo(info)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeBodyInfo(info *bodyInfo) {
	if !info.static && info.body != nil {
		var joints []*cp.Constraint
		info.body.EachConstraint(func(c *cp.Constraint) {
			joints = append(joints, c)
		})
		for _, c := range joints {
			if ps.space.ContainsConstraint(c) {
				ps.space.RemoveConstraint(c)
			}
		}
	}
	for _, shape := range info.shapes {
		if shape != nil && ps.space.ContainsShape(shape) {
			ps.space.RemoveShape(shape)
		}
	}
	if !info.static && info.body != nil && ps.space.ContainsBody(info.body) {
		ps.space.RemoveBody(info.body)
	}
}
