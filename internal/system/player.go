// internal/system/player.go
package system

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
)

// PlayerSystem turns directional input into player velocity and handles
// firing with its cooldown.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *PlayerSystem) Update(deltaTime float64, in InputState) {
	for id, player := range s.ecs.Players {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}

		vel.X = 0
		if in.Left {
			vel.X -= config.PlayerSpeed
		}
		if in.Right {
			vel.X += config.PlayerSpeed
		}

		if player.FireCooldown > 0 {
			player.FireCooldown -= deltaTime
		}
		if player.InvulnTimer > 0 {
			player.InvulnTimer -= deltaTime
		}

		if in.Fire && player.FireCooldown <= 0 {
			s.spawnProjectile(pos)
			player.FireCooldown = config.FireCooldown
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: id})
		}
	}
}

// spawnProjectile creates a player shot just above the ship's nose.
func (s *PlayerSystem) spawnProjectile(playerPos *component.Position) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: playerPos.X,
		Y: playerPos.Y - config.PlayerHeight/2 - config.ProjectileHeight/2,
	}
	s.ecs.Velocities[id] = &component.Velocity{X: 0, Y: -config.ProjectileSpeed}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Width:  config.ProjectileWidth,
		Height: config.ProjectileHeight,
		Shape:  component.ShapeRect,
	}
	s.ecs.Colliders[id] = &component.Collider{
		Width:  config.ProjectileWidth,
		Height: config.ProjectileHeight,
	}
	s.ecs.Projectiles[id] = &component.Projectile{
		FromPlayer: true,
		Damage:     config.ProjectileDamage,
	}
}
