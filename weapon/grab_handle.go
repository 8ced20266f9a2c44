package weapon

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
)

var (
	ErrAlreadyAttached = errors.New("weapon: grab handle already attached")
	ErrNoBody          = errors.New("weapon: no body to attach")
	ErrNoSpace         = errors.New("weapon: grab handle has no space")
)

// Grabber holds at most one body and pulls it toward a moving anchor.
type Grabber interface {
	Attach(target BodyRef, grabPoint cp.Vector) error
	SetTargetPose(pose cp.Vector)
	CurrentPose() cp.Vector
	Release()
	Attached() bool
	TargetValid() bool
}

const (
	defaultGrabMaxForce = 50000.0
	defaultStepRate     = 60.0
)

// defaultGrabErrorBias corrects 15% of the joint error per 1/60s step.
var defaultGrabErrorBias = math.Pow(1-0.15, 60)

// JointHandle is a Grabber backed by a pivot joint between a kinematic
// anchor body and the target. The anchor body is never added to the space;
// only the joint is.
type JointHandle struct {
	MaxForce  float64
	ErrorBias float64
	// StepRate is the physics steps per second, used to give the anchor a
	// velocity matching each commanded move.
	StepRate float64

	space  *cp.Space
	anchor *cp.Body
	joint  *cp.Constraint
	target BodyRef
	pose   cp.Vector
}

func NewJointHandle(space *cp.Space, maxForce float64) *JointHandle {
	if maxForce <= 0 {
		maxForce = defaultGrabMaxForce
	}
	return &JointHandle{
		MaxForce:  maxForce,
		ErrorBias: defaultGrabErrorBias,
		StepRate:  defaultStepRate,
		space:     space,
		anchor:    cp.NewKinematicBody(),
	}
}

func (h *JointHandle) Attach(target BodyRef, grabPoint cp.Vector) error {
	if h.joint != nil {
		return ErrAlreadyAttached
	}
	if target.Body == nil {
		return ErrNoBody
	}
	if h.space == nil {
		return ErrNoSpace
	}

	h.anchor.SetPosition(grabPoint)
	h.anchor.SetVelocityVector(cp.Vector{})

	// Pin the body at the grab point, not its centre, so attaching never
	// moves it.
	joint := cp.NewPivotJoint2(h.anchor, target.Body, cp.Vector{}, target.Body.WorldToLocal(grabPoint))
	joint.SetMaxForce(h.MaxForce)
	joint.SetErrorBias(h.ErrorBias)
	h.space.AddConstraint(joint)

	h.joint = joint
	h.target = target
	h.pose = grabPoint
	return nil
}

func (h *JointHandle) SetTargetPose(pose cp.Vector) {
	if h.joint == nil {
		return
	}
	rate := h.StepRate
	if rate <= 0 {
		rate = defaultStepRate
	}
	h.anchor.SetVelocityVector(pose.Sub(h.pose).Mult(rate))
	h.anchor.SetPosition(pose)
	h.pose = pose
}

// CurrentPose is the last commanded anchor, not where the body actually is.
func (h *JointHandle) CurrentPose() cp.Vector {
	return h.pose
}

// Release is safe to call repeatedly and after the world already removed
// the joint along with its body.
func (h *JointHandle) Release() {
	if h.joint == nil {
		return
	}
	if h.space != nil && h.space.ContainsConstraint(h.joint) {
		h.space.RemoveConstraint(h.joint)
	}
	h.anchor.SetVelocityVector(cp.Vector{})
	h.joint = nil
	h.target = BodyRef{}
}

func (h *JointHandle) Attached() bool {
	return h.joint != nil
}

// TargetValid reports whether the attached body and joint are both still in
// the space.
func (h *JointHandle) TargetValid() bool {
	if h.joint == nil || h.target.Body == nil || h.space == nil {
		return false
	}
	return h.space.ContainsBody(h.target.Body) && h.space.ContainsConstraint(h.joint)
}

// Target returns the attached body, if any.
func (h *JointHandle) Target() (BodyRef, bool) {
	return h.target, h.joint != nil
}
