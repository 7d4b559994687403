// internal/system/projectile.go
package system

import (
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
)

// ProjectileSystem despawns shots that leave the visible area.
// Movement itself is handled by the MovementSystem; hits by the
// CollisionSystem.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}
		if pos.Y < -config.ProjectileHeight || pos.Y > config.ScreenHeight+config.ProjectileHeight {
			s.ecs.RemoveEntity(id)
		}
	}
}
