package weapon

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func newTestSpace() *cp.Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return space
}

func addTestProp(space *cp.Space, actor ActorID, pos cp.Vector, radius float64, cat Category) *cp.Body {
	const mass = 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(pos)
	body.UserData = actor
	space.AddBody(body)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetMass(mass)
	shape.SetFilter(cat.ShapeFilter())
	shape.UserData = actor
	space.AddShape(shape)
	return body
}

func addTestWall(space *cp.Space, bb cp.BB) *cp.Shape {
	shape := cp.NewBox2(space.StaticBody, bb, 0)
	shape.SetFilter(CategoryWorld.ShapeFilter())
	space.AddShape(shape)
	return shape
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

type recordedTrace struct {
	from, to cp.Vector
	hit      bool
}

type traceLog struct {
	traces []recordedTrace
}

func (l *traceLog) RecordTrace(from, to cp.Vector, hit bool) {
	l.traces = append(l.traces, recordedTrace{from: from, to: to, hit: hit})
}

func TestSpaceTracerHitsNearestSurface(t *testing.T) {
	space := newTestSpace()
	addTestProp(space, 7, cp.Vector{X: 500}, 10, CategoryProp)
	tracer := NewSpaceTracer(space)

	hit, ok := tracer.Trace(cp.Vector{}, cp.Vector{X: 1}, 1000, CategoryProp)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !approx(hit.Point.X, 490) || !approx(hit.Point.Y, 0) {
		t.Fatalf("expected surface point (490,0), got %v", hit.Point)
	}
	if !approx(hit.Distance, 490) {
		t.Fatalf("expected distance 490, got %v", hit.Distance)
	}
	if hit.Target.Actor != 7 || hit.Target.Body == nil {
		t.Fatalf("unexpected target %+v", hit.Target)
	}
}

func TestSpaceTracerMisses(t *testing.T) {
	tests := []struct {
		name       string
		space      bool
		dir        cp.Vector
		maxRange   float64
		categories Category
	}{
		{name: "out_of_range", space: true, dir: cp.Vector{X: 1}, maxRange: 400, categories: CategoryProp},
		{name: "category_not_whitelisted", space: true, dir: cp.Vector{X: 1}, maxRange: 1000, categories: CategoryDebris},
		{name: "empty_whitelist", space: true, dir: cp.Vector{X: 1}, maxRange: 1000, categories: 0},
		{name: "behind_origin", space: true, dir: cp.Vector{X: -1}, maxRange: 1000, categories: CategoryProp},
		{name: "zero_direction", space: true, dir: cp.Vector{}, maxRange: 1000, categories: CategoryProp},
		{name: "zero_range", space: true, dir: cp.Vector{X: 1}, maxRange: 0, categories: CategoryProp},
		{name: "no_space", space: false, dir: cp.Vector{X: 1}, maxRange: 1000, categories: CategoryProp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tracer := &SpaceTracer{}
			if tc.space {
				space := newTestSpace()
				addTestProp(space, 1, cp.Vector{X: 500}, 10, CategoryProp)
				tracer.Space = space
			}
			if _, ok := tracer.Trace(cp.Vector{}, tc.dir, tc.maxRange, tc.categories); ok {
				t.Fatalf("expected a miss")
			}
		})
	}
}

func TestSpaceTracerRespectsWhitelist(t *testing.T) {
	space := newTestSpace()
	addTestWall(space, cp.BB{L: 190, B: -50, R: 210, T: 50})
	addTestProp(space, 3, cp.Vector{X: 500}, 10, CategoryProp)
	tracer := NewSpaceTracer(space)

	hit, ok := tracer.Trace(cp.Vector{}, cp.Vector{X: 1}, 1000, CategoryProp)
	if !ok || hit.Target.Actor != 3 {
		t.Fatalf("wall outside the whitelist should not block: %+v ok=%v", hit, ok)
	}

	hit, ok = tracer.Trace(cp.Vector{}, cp.Vector{X: 1}, 1000, CategoryProp|CategoryWorld)
	if !ok || !approx(hit.Point.X, 190) {
		t.Fatalf("expected wall hit at x=190, got %+v ok=%v", hit.Point, ok)
	}
}

func TestSpaceTracerIgnoresSensors(t *testing.T) {
	space := newTestSpace()
	sensorBody := addTestProp(space, 2, cp.Vector{X: 100}, 10, CategoryProp)
	sensorBody.EachShape(func(s *cp.Shape) { s.SetSensor(true) })
	addTestProp(space, 5, cp.Vector{X: 500}, 10, CategoryProp)

	hit, ok := NewSpaceTracer(space).Trace(cp.Vector{}, cp.Vector{X: 1}, 1000, CategoryProp)
	if !ok || hit.Target.Actor != 5 {
		t.Fatalf("expected the sensor to be skipped, got %+v", hit.Target)
	}
}

func TestSpaceTracerNormalizesDirection(t *testing.T) {
	space := newTestSpace()
	addTestProp(space, 1, cp.Vector{X: 500}, 10, CategoryProp)

	hit, ok := NewSpaceTracer(space).Trace(cp.Vector{}, cp.Vector{X: 25}, 1000, CategoryProp)
	if !ok || !approx(hit.Point.X, 490) {
		t.Fatalf("expected hit at 490 for an unnormalized direction, got %v ok=%v", hit.Point, ok)
	}
}

func TestSpaceTracerForcesSimulation(t *testing.T) {
	space := newTestSpace()
	body := addTestProp(space, 1, cp.Vector{X: 500}, 10, CategoryProp)
	body.SetType(cp.BODY_KINEMATIC)
	tracer := NewSpaceTracer(space)

	for i := 0; i < 2; i++ {
		if _, ok := tracer.Trace(cp.Vector{}, cp.Vector{X: 1}, 1000, CategoryProp); !ok {
			t.Fatalf("trace %d: expected a hit", i)
		}
		if body.GetType() != cp.BODY_DYNAMIC {
			t.Fatalf("trace %d: expected struck body to be dynamic, got type %d", i, body.GetType())
		}
	}
	if math.IsInf(body.Mass(), 0) || body.Mass() <= 0 {
		t.Fatalf("expected finite mass after waking, got %v", body.Mass())
	}
}

func TestSpaceTracerDebugRecording(t *testing.T) {
	space := newTestSpace()
	addTestProp(space, 1, cp.Vector{X: 500}, 10, CategoryProp)
	rec := &traceLog{}
	tracer := &SpaceTracer{Space: space, Recorder: rec}

	tracer.Trace(cp.Vector{}, cp.Vector{X: 1}, 1000, CategoryProp)
	if len(rec.traces) != 0 {
		t.Fatalf("recorder should stay silent without debug")
	}

	tracer.Debug = true
	tracer.Trace(cp.Vector{}, cp.Vector{X: 1}, 1000, CategoryProp)
	tracer.Trace(cp.Vector{}, cp.Vector{Y: 1}, 1000, CategoryProp)
	if len(rec.traces) != 2 {
		t.Fatalf("expected 2 recorded traces, got %d", len(rec.traces))
	}
	if !rec.traces[0].hit || !approx(rec.traces[0].to.X, 490) {
		t.Fatalf("hit trace should end on the surface: %+v", rec.traces[0])
	}
	if rec.traces[1].hit || !approx(rec.traces[1].to.Y, 1000) {
		t.Fatalf("miss trace should run the full range: %+v", rec.traces[1])
	}
}
