// internal/system/lifetime.go
package system

import (
	"go-galaga/internal/entity"
	"go-galaga/internal/utils"
)

// LifetimeSystem ticks explosion timers, animating the expanding ring
// and removing the effect once it has run its course.
type LifetimeSystem struct {
	ecs *entity.ECS
}

func NewLifetimeSystem(ecs *entity.ECS) *LifetimeSystem {
	return &LifetimeSystem{ecs: ecs}
}

func (s *LifetimeSystem) Update(deltaTime float64) {
	for id, ex := range s.ecs.Explosions {
		ex.Timer += deltaTime
		if ex.Timer >= ex.Duration {
			s.ecs.RemoveEntity(id)
			continue
		}

		progress := float32(ex.Timer / ex.Duration)
		if renderable, ok := s.ecs.Renderables[id]; ok {
			diameter := utils.Lerp(0, ex.MaxRadius*2, progress)
			renderable.Width = diameter
			renderable.Height = diameter
			renderable.Color.A = uint8(255 * (1 - progress))
		}
	}
}
