package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
	"github.com/milk9111/gravgun/ecs/entity"
	"github.com/milk9111/gravgun/ecs/present"
	"github.com/milk9111/gravgun/ecs/system"
	"github.com/milk9111/gravgun/prefabs"
	"github.com/milk9111/gravgun/weapon"
)

const (
	baseWidth  = 960
	baseHeight = 540

	stepRate = system.StepRate

	gunPrefab = "gravity_gun.yaml"
)

type Game struct {
	frames int
	debug  bool

	world   *ecs.World
	physics *system.PhysicsSystem
	render  *present.RenderSystem
	level   *entity.Level
	watcher *prefabs.Watcher
}

func NewGame(levelPath string, debug, watch bool) (*Game, error) {
	w := ecs.NewWorld()
	physics := system.NewPhysicsSystem(system.DefaultGravity)
	effects := system.NewEffectSystem(w, nil)
	traces := system.NewDebugTraceSystem()

	w.AddSystem(present.NewInputSystem())
	w.AddSystem(system.NewPlayerControllerSystem(physics.Space()))
	w.AddSystem(system.NewProximitySystem())
	w.AddSystem(system.NewWeaponSystem())
	w.AddSystem(physics)
	w.AddSystem(effects)
	w.AddSystem(system.NewParticleSystem())
	w.AddSystem(system.NewTTLSystem())
	w.AddSystem(traces)
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(present.NewAudioSystem())

	lvl, err := entity.NewLevel(w, levelPath, entity.Env{
		Space:    physics.Space(),
		Effects:  effects,
		Recorder: traces,
	})
	if err != nil {
		return nil, fmt.Errorf("game: load level %s: %w", levelPath, err)
	}

	g := &Game{
		debug:   debug,
		world:   w,
		physics: physics,
		render:  present.NewRenderSystem(),
		level:   lvl,
	}
	if debug {
		g.reloadGun(gunPrefab)
	}
	if watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		present.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		present.DrawCarryDebug(g.world, screen)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()), 10, baseHeight-20)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.Name(path) == gunPrefab {
				g.reloadGun(gunPrefab)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab watch: %v", err)
		default:
			return
		}
	}
}

// reloadGun retunes every gravity gun in the world from prefab. A gun in the
// middle of a grab picks the tuning up once it lets go.
func (g *Game) reloadGun(prefab string) {
	cfg, err := prefabs.LoadGravityGunConfig(prefab)
	if err != nil {
		log.Printf("game: reload %s: %v", prefab, err)
		return
	}
	cfg.Debug = cfg.Debug || g.debug

	retuned := 0
	ecs.ForEach(g.world, component.WeaponComponent.Kind(), func(e ecs.Entity, wc *component.Weapon) {
		gun, ok := wc.Weapon.(*weapon.GravityGun)
		if !ok {
			return
		}
		if err := gun.Retune(cfg); err != nil {
			log.Printf("game: retune gun=%v: %v", e, err)
			return
		}
		retuned++
	})
	log.Printf("game: reloaded %s: guns=%d", prefab, retuned)
}
