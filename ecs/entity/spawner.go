package entity

import (
	"fmt"

	"github.com/milk9111/gravgun/ecs"
	"github.com/milk9111/gravgun/prefabs"
)

// Spawner builds prefabs into a world at given positions.
type Spawner struct {
	World *ecs.World
	Env   Env
}

func (s *Spawner) Spawn(prefab string, x, y float64) (ecs.Entity, error) {
	if s == nil || s.World == nil {
		return 0, fmt.Errorf("spawner: world is nil")
	}
	return buildAt(s.World, prefab, s.Env, x, y)
}

// SpawnAll places every entry, repeating each Count times. On error nothing
// spawned by this call is left behind.
func (s *Spawner) SpawnAll(entries []prefabs.LevelEntitySpec) ([]ecs.Entity, error) {
	var out []ecs.Entity
	for _, entry := range entries {
		count := entry.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			x := entry.X + entry.DX*float64(i)
			y := entry.Y + entry.DY*float64(i)
			e, err := s.Spawn(entry.Prefab, x, y)
			if err != nil {
				for _, spawned := range out {
					DestroyEntity(s.World, spawned)
				}
				return nil, fmt.Errorf("spawn %s at (%v,%v): %w", entry.Prefab, x, y, err)
			}
			out = append(out, e)
		}
	}
	return out, nil
}
