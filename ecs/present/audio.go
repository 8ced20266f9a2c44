package present

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/gravgun/assets"
	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/ecs/component"
)

// AudioSystem plays Audio components through ebiten. Players are created on
// first use and closed once their entity is gone.
type AudioSystem struct {
	ctx     *audio.Context
	players map[ecs.Entity][]*audio.Player
	missing map[string]bool
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{
		players: make(map[ecs.Entity][]*audio.Player),
		missing: make(map[string]bool),
	}
}

func (a *AudioSystem) context() *audio.Context {
	if a.ctx != nil {
		return a.ctx
	}
	if ctx := audio.CurrentContext(); ctx != nil {
		a.ctx = ctx
	} else {
		a.ctx = audio.NewContext(assets.SampleRate)
	}
	return a.ctx
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, audioComp *component.Audio) {
		players := a.playersFor(e, audioComp)

		for i := range audioComp.Play {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false
			if i >= len(players) || players[i] == nil {
				continue
			}
			player := players[i]
			if !player.IsPlaying() {
				if i < len(audioComp.Volume) {
					player.SetVolume(audioComp.Volume[i])
				}
				if err := player.Rewind(); err != nil {
					log.Printf("audio: rewind %q: %v", audioComp.Names[i], err)
				}
				player.Play()
			}
		}

		for i := range audioComp.Stop {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false
			if i < len(players) && players[i] != nil && players[i].IsPlaying() {
				players[i].Pause()
			}
		}
	})

	for e, players := range a.players {
		if ecs.Has(w, e, component.AudioComponent.Kind()) {
			continue
		}
		for _, p := range players {
			if p == nil {
				continue
			}
			p.Pause()
			_ = p.Close()
		}
		delete(a.players, e)
	}
}

func (a *AudioSystem) playersFor(e ecs.Entity, audioComp *component.Audio) []*audio.Player {
	players := a.players[e]
	for i := len(players); i < len(audioComp.Names); i++ {
		players = append(players, a.newPlayer(audioComp.Names[i], i < len(audioComp.Loop) && audioComp.Loop[i]))
	}
	a.players[e] = players
	return players
}

func (a *AudioSystem) newPlayer(name string, loop bool) *audio.Player {
	pcm, err := assets.Tone(name)
	if err != nil {
		if !a.missing[name] {
			a.missing[name] = true
			log.Printf("audio: no sound for %q: %v", name, err)
		}
		return nil
	}
	ctx := a.context()
	if !loop {
		return ctx.NewPlayerFromBytes(pcm)
	}
	stream := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("audio: loop %q: %v", name, err)
		return nil
	}
	return player
}
