// internal/system/movement.go
package system

import (
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/utils"
)

// MovementSystem integrates velocities into positions and keeps the
// player inside the world bounds.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		if vel, hasVel := s.ecs.Velocities[id]; hasVel {
			pos.X += vel.X * deltaTime
			pos.Y += vel.Y * deltaTime
		}
		if _, isPlayer := s.ecs.Players[id]; isPlayer {
			pos.X = utils.Clamp(pos.X, config.PlayerMinX, config.PlayerMaxX)
		}
	}
}
