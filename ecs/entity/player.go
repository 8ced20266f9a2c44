package entity

import (
	"fmt"

	"github.com/milk9111/gravgun/ecs"
)

// NewPlayer builds the player along with its starting weapon, which needs
// env's physics space.
func NewPlayer(w *ecs.World, env Env) (ecs.Entity, error) {
	return BuildEntityWith(w, "player.yaml", env)
}

func NewPlayerAt(w *ecs.World, env Env, x, y float64) (ecs.Entity, error) {
	entity, err := NewPlayer(w, env)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		DestroyEntity(w, entity)
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
