// internal/system/collision.go
package system

import (
	"go-galaga/internal/component"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/types"
)

// CollisionSystem checks projectile bounding boxes against their targets:
// player shots vs enemies, enemy shots vs the player. Entity counts are
// tiny, so the O(n*m) scan needs no spatial index. Both parties of a hit
// are removed on the same frame.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	for projID, proj := range s.ecs.Projectiles {
		projPos := s.ecs.Positions[projID]
		projCol := s.ecs.Colliders[projID]

		if proj.FromPlayer {
			s.checkEnemyHits(projID, proj, projPos, projCol)
		} else {
			s.checkPlayerHit(projID, projPos, projCol)
		}
	}
}

func (s *CollisionSystem) checkEnemyHits(projID types.EntityID, proj *component.Projectile, projPos *component.Position, projCol *component.Collider) {
	for enemyID, enemy := range s.ecs.Enemies {
		enemyPos := s.ecs.Positions[enemyID]
		enemyCol := s.ecs.Colliders[enemyID]
		if !aabbOverlap(projPos, projCol, enemyPos, enemyCol) {
			continue
		}

		s.ecs.RemoveEntity(projID)

		if health, ok := s.ecs.Healths[enemyID]; ok {
			health.Value -= proj.Damage
			if health.Value > 0 {
				return
			}
		}

		points := enemy.Points
		spawnExplosion(s.ecs, enemyPos)
		s.ecs.RemoveEntity(enemyID)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: points})
		return
	}
}

func (s *CollisionSystem) checkPlayerHit(projID types.EntityID, projPos *component.Position, projCol *component.Collider) {
	for playerID, player := range s.ecs.Players {
		if player.InvulnTimer > 0 {
			continue
		}
		playerPos := s.ecs.Positions[playerID]
		playerCol := s.ecs.Colliders[playerID]
		if !aabbOverlap(projPos, projCol, playerPos, playerCol) {
			continue
		}

		s.ecs.RemoveEntity(projID)
		spawnExplosion(s.ecs, playerPos)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: playerID})
		return
	}
}
