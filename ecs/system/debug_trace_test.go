package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
)

func TestDebugTraceSystem(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDebugTraceSystem()
	s.RecordTrace(cp.Vector{}, cp.Vector{X: 10}, true)
	s.RecordTrace(cp.Vector{}, cp.Vector{Y: 10}, false)
	s.Update(w)
	s.Update(w)

	var colors []any
	ecs.ForEach2(w, component.LineRenderComponent.Kind(), component.DebugTraceTagComponent.Kind(), func(e ecs.Entity, line *component.LineRender, _ *component.DebugTraceTag) {
		colors = append(colors, line.Color)
		if !ecs.Has(w, e, component.TTLComponent.Kind()) {
			t.Fatalf("trace line should expire")
		}
	})
	if len(colors) != 2 {
		t.Fatalf("expected one line per trace, got %d", len(colors))
	}
	if colors[0] != debugTraceHitColor || colors[1] != debugTraceMissColor {
		t.Fatalf("hit and miss should be coloured apart: %v", colors)
	}
}
