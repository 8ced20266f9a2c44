package present

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
)

type RenderSystem struct {
	Background color.Color
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{Background: color.RGBA{R: 22, G: 24, B: 32, A: 255}}
}

type drawable struct {
	e     ecs.Entity
	layer int
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.Background != nil {
		screen.Fill(r.Background)
	}

	camX, camY, zoom := cameraTransform(w)

	var items []drawable
	collect := func(e ecs.Entity) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawable{e: e, layer: layer})
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		collect(e)
	})
	ecs.ForEach(w, component.LineRenderComponent.Kind(), func(e ecs.Entity, _ *component.LineRender) {
		if !ecs.Has(w, e, component.SpriteComponent.Kind()) {
			collect(e)
		}
	})
	ecs.ForEach(w, component.ParticleEmitterComponent.Kind(), func(e ecs.Entity, _ *component.ParticleEmitter) {
		if !ecs.Has(w, e, component.SpriteComponent.Kind()) && !ecs.Has(w, e, component.LineRenderComponent.Kind()) {
			collect(e)
		}
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	toScreen := func(x, y float64) (float32, float32) {
		return float32((x - camX) * zoom), float32((y - camY) * zoom)
	}

	for _, it := range items {
		e := it.e
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				drawSprite(screen, t, s, toScreen, zoom)
			}
		}
		if line, ok := ecs.Get(w, e, component.LineRenderComponent.Kind()); ok && !line.Hidden && line.Color != nil {
			x1, y1 := toScreen(line.StartX, line.StartY)
			x2, y2 := toScreen(line.EndX, line.EndY)
			width := line.Width
			if width <= 0 {
				width = 1
			}
			vector.StrokeLine(screen, x1, y1, x2, y2, width*float32(zoom), line.Color, line.AntiAlias)
		}
		if em, ok := ecs.Get(w, e, component.ParticleEmitterComponent.Kind()); ok {
			size := em.Size
			if size <= 0 {
				size = 2
			}
			for _, p := range em.Particles {
				x, y := toScreen(p.X, p.Y)
				c := em.Color
				if em.Lifetime > 0 {
					c = fade(c, float64(p.Life)/float64(em.Lifetime))
				}
				vector.FillRect(screen, x-float32(size*zoom)/2, y-float32(size*zoom)/2, float32(size*zoom), float32(size*zoom), c, false)
			}
		}
	}
}

func drawSprite(screen *ebiten.Image, t *component.Transform, s *component.Sprite, toScreen func(float64, float64) (float32, float32), zoom float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	w := s.Width * sx
	h := s.Height * sy
	ox, oy := s.OriginX, s.OriginY
	if ox == 0 && oy == 0 {
		ox, oy = s.Width/2, s.Height/2
	}
	if s.FacingLeft {
		ox = s.Width - ox
	}
	x, y := toScreen(t.X-ox*sx, t.Y-oy*sy)
	if s.Circle {
		r := float32(w * zoom / 2)
		vector.FillCircle(screen, x+r, y+r, r, s.Color, true)
		return
	}
	vector.FillRect(screen, x, y, float32(w*zoom), float32(h*zoom), s.Color, false)
}

// fade scales a premultiplied colour toward transparent.
func fade(c color.RGBA, k float64) color.RGBA {
	k = math.Max(0, math.Min(1, k))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
