package system

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
)

const debugTraceFrames = 20

var (
	debugTraceHitColor  = color.RGBA{R: 60, G: 220, B: 90, A: 255}
	debugTraceMissColor = color.RGBA{R: 230, G: 60, B: 60, A: 255}
)

type recordedTrace struct {
	from, to cp.Vector
	hit      bool
}

// DebugTraceSystem turns recorded weapon traces into short-lived lines.
type DebugTraceSystem struct {
	pending []recordedTrace
}

func NewDebugTraceSystem() *DebugTraceSystem {
	return &DebugTraceSystem{}
}

func (s *DebugTraceSystem) RecordTrace(from, to cp.Vector, hit bool) {
	s.pending = append(s.pending, recordedTrace{from: from, to: to, hit: hit})
}

func (s *DebugTraceSystem) Update(w *ecs.World) {
	if s == nil || w == nil || len(s.pending) == 0 {
		return
	}
	for _, tr := range s.pending {
		c := debugTraceMissColor
		if tr.hit {
			c = debugTraceHitColor
		}
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.LineRenderComponent.Kind(), &component.LineRender{
			StartX: tr.from.X,
			StartY: tr.from.Y,
			EndX:   tr.to.X,
			EndY:   tr.to.Y,
			Width:  1,
			Color:  c,
		})
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: debugTraceFrames})
		_ = ecs.Add(w, e, component.DebugTraceTagComponent.Kind(), &component.DebugTraceTag{})
		_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 100})
	}
	s.pending = s.pending[:0]
}
