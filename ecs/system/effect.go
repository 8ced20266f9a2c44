package system

import (
	"image/color"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/weapon"
)

const (
	oneShotSoundFrames = 90
	stopLingerFrames   = 2
	beamLayer          = 40
)

// DefaultParticlePresets are the emitters effects can spawn by name.
var DefaultParticlePresets = map[string]component.ParticleEmitter{
	"launch_burst": {
		Burst:    24,
		Lifetime: 24,
		Speed:    4,
		Spread:   1,
		Color:    color.RGBA{R: 255, G: 200, B: 80, A: 255},
		Size:     3,
	},
	"beam": {
		Rate:     1.5,
		Lifetime: 18,
		Speed:    1.2,
		Spread:   3.2,
		Color:    color.RGBA{R: 200, G: 118, B: 31, A: 200},
		Size:     2,
		Loop:     true,
	},
	"muzzle_flash": {
		Burst:    10,
		Lifetime: 10,
		Speed:    2.5,
		Spread:   6.3,
		Color:    color.RGBA{R: 120, G: 190, B: 230, A: 230},
		Size:     2,
	},
}

// BeamPreset styles a beam effect. Frames is how long the beam stays drawn.
type BeamPreset struct {
	Color  color.RGBA
	Width  float32
	Frames int
}

// DefaultBeamPresets are the beams effects can spawn by name. Unknown names
// fall back to "muzzle_beam".
var DefaultBeamPresets = map[string]BeamPreset{
	"muzzle_beam": {Color: color.RGBA{R: 110, G: 170, B: 210, A: 210}, Width: 2, Frames: 6},
}

// EffectSystem spawns sound and particle effects as entities and keeps
// following effects on their targets.
type EffectSystem struct {
	w       *ecs.World
	presets map[string]component.ParticleEmitter
	seed    uint64
}

func NewEffectSystem(w *ecs.World, presets map[string]component.ParticleEmitter) *EffectSystem {
	if presets == nil {
		presets = DefaultParticlePresets
	}
	return &EffectSystem{w: w, presets: presets}
}

type effectHandle struct {
	w *ecs.World
	e ecs.Entity
}

// Stop ends a looping effect. The entity lingers long enough for the audio
// and particle systems to see the stop, then expires.
func (h *effectHandle) Stop() {
	if h == nil || !h.w.IsAlive(h.e) {
		return
	}
	fx, ok := ecs.Get(h.w, h.e, component.EffectComponent.Kind())
	if !ok || fx.Stopped {
		return
	}
	fx.Stopped = true

	if audio, ok := ecs.Get(h.w, h.e, component.AudioComponent.Kind()); ok {
		for i := range audio.Stop {
			audio.Play[i] = false
			audio.Stop[i] = true
		}
	}
	linger := stopLingerFrames
	if em, ok := ecs.Get(h.w, h.e, component.ParticleEmitterComponent.Kind()); ok {
		em.Stopped = true
		if em.Lifetime > linger {
			linger = em.Lifetime
		}
	}
	_ = ecs.Add(h.w, h.e, component.TTLComponent.Kind(), &component.TTL{Frames: linger})
}

func (s *EffectSystem) Spawn(req weapon.EffectRequest) weapon.EffectHandle {
	if s == nil || s.w == nil || req.Name == "" {
		return nil
	}
	w := s.w
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: req.At.X, Y: req.At.Y, ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, e, component.EffectComponent.Kind(), &component.Effect{
		Kind:   req.Kind,
		Name:   req.Name,
		Follow: uint64(req.Follow),
		Loop:   req.Loop,
	})

	switch req.Kind {
	case weapon.EffectSound:
		_ = ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
			Names:  []string{req.Name},
			Volume: []float64{1},
			Loop:   []bool{req.Loop},
			Play:   []bool{true},
			Stop:   []bool{false},
		})
		if !req.Loop {
			_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: oneShotSoundFrames})
		}
	case weapon.EffectParticles:
		em := s.presets[req.Name]
		em.Name = req.Name
		em.Loop = req.Loop
		em.Particles = nil
		s.seed++
		em.Seed = s.seed*0x9E3779B97F4A7C15 + 1
		if !req.Loop && em.Burst == 0 {
			em.Burst = 8
		}
		_ = ecs.Add(w, e, component.ParticleEmitterComponent.Kind(), &em)
		if !req.Loop {
			_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: em.Lifetime + 1})
		}
	case weapon.EffectBeam:
		preset, ok := DefaultBeamPresets[req.Name]
		if !ok {
			preset = DefaultBeamPresets["muzzle_beam"]
		}
		_ = ecs.Add(w, e, component.LineRenderComponent.Kind(), &component.LineRender{
			StartX:    req.At.X,
			StartY:    req.At.Y,
			EndX:      req.To.X,
			EndY:      req.To.Y,
			Width:     preset.Width,
			Color:     preset.Color,
			AntiAlias: true,
		})
		_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: beamLayer})
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: preset.Frames})
	}

	return &effectHandle{w: w, e: e}
}

func (s *EffectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.EffectComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, fx *component.Effect, t *component.Transform) {
		if fx.Follow == 0 || fx.Stopped {
			return
		}
		target := ecs.Entity(fx.Follow)
		tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			// Target gone; a looping effect would otherwise run forever.
			(&effectHandle{w: w, e: e}).Stop()
			return
		}
		t.X, t.Y = tt.X, tt.Y
	})
}
