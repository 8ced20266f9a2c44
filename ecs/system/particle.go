package system

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
)

// ParticleSystem advances emitters: spawns new particles around the
// transform and ages the live ones.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ParticleEmitterComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, em *component.ParticleEmitter, t *component.Transform) {
		live := em.Particles[:0]
		for _, p := range em.Particles {
			p.Life--
			if p.Life <= 0 {
				continue
			}
			p.X += p.VX
			p.Y += p.VY
			live = append(live, p)
		}
		em.Particles = live

		if em.Stopped {
			return
		}
		n := em.Burst
		em.Burst = 0
		if em.Loop {
			em.Accum += em.Rate
			whole := math.Floor(em.Accum)
			em.Accum -= whole
			n += int(whole)
		}
		for i := 0; i < n; i++ {
			em.Particles = append(em.Particles, spawnParticle(em, t))
		}
	})
}

func spawnParticle(em *component.ParticleEmitter, t *component.Transform) component.Particle {
	rng := emitterRand(em)
	base := math.Atan2(em.DirY, em.DirX)
	angle := base + (rng.Float64()-0.5)*em.Spread
	if em.DirX == 0 && em.DirY == 0 {
		angle = rng.Float64() * 2 * math.Pi
	}
	speed := em.Speed * (0.5 + rng.Float64()*0.5)
	life := em.Lifetime
	if life <= 0 {
		life = 1
	}
	return component.Particle{
		X:    t.X,
		Y:    t.Y,
		VX:   math.Cos(angle) * speed,
		VY:   math.Sin(angle) * speed,
		Life: life,
	}
}

// emitterRand returns the emitter's source, seeding it from Seed on first use.
func emitterRand(em *component.ParticleEmitter) *rand.Rand {
	if em.Rand == nil {
		em.Rand = rand.New(rand.NewPCG(em.Seed, em.Seed))
	}
	return em.Rand
}
