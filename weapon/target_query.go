package weapon

import "github.com/jakecoffman/cp"

// Hit is the nearest blocking intersection found by a trace.
type Hit struct {
	Target   BodyRef
	Shape    *cp.Shape
	Point    cp.Vector
	Normal   cp.Vector
	Distance float64
}

// Tracer casts a single forward ray and reports the closest hit among the
// given categories.
type Tracer interface {
	Trace(origin, direction cp.Vector, maxRange float64, categories Category) (Hit, bool)
}

// TraceRecorder receives every trace when debug tracing is on.
type TraceRecorder interface {
	RecordTrace(from, to cp.Vector, hit bool)
}

// SpaceTracer traces against a Chipmunk space. Sensors never block.
type SpaceTracer struct {
	Space    *cp.Space
	Debug    bool
	Recorder TraceRecorder
}

func NewSpaceTracer(space *cp.Space) *SpaceTracer {
	return &SpaceTracer{Space: space}
}

func (t *SpaceTracer) Trace(origin, direction cp.Vector, maxRange float64, categories Category) (Hit, bool) {
	if t == nil || t.Space == nil || maxRange <= 0 || categories == 0 {
		return Hit{}, false
	}
	dir := unit(direction)
	if dir == (cp.Vector{}) {
		return Hit{}, false
	}

	end := origin.Add(dir.Mult(maxRange))
	info := t.Space.SegmentQueryFirst(origin, end, 0, queryFilter(categories))
	if info.Shape == nil {
		t.record(origin, end, false)
		return Hit{}, false
	}

	body := info.Shape.Body()
	forceSimulated(body)

	hit := Hit{
		Target:   BodyRef{Actor: actorOf(info.Shape), Body: body},
		Shape:    info.Shape,
		Point:    info.Point,
		Normal:   info.Normal,
		Distance: info.Alpha * maxRange,
	}
	t.record(origin, info.Point, true)
	return hit, true
}

func (t *SpaceTracer) record(from, to cp.Vector, hit bool) {
	if !t.Debug || t.Recorder == nil {
		return
	}
	t.Recorder.RecordTrace(from, to, hit)
}

// forceSimulated wakes a frozen (kinematic) prop into a dynamic body.
// Dynamic bodies are only woken; static ones are left alone.
func forceSimulated(body *cp.Body) {
	if body == nil {
		return
	}
	switch body.GetType() {
	case cp.BODY_KINEMATIC:
		body.SetType(cp.BODY_DYNAMIC)
		body.Activate()
	case cp.BODY_DYNAMIC:
		body.Activate()
	}
}

func actorOf(shape *cp.Shape) ActorID {
	if shape == nil {
		return 0
	}
	if id, ok := shape.UserData.(ActorID); ok {
		return id
	}
	if body := shape.Body(); body != nil {
		if id, ok := body.UserData.(ActorID); ok {
			return id
		}
	}
	return 0
}
