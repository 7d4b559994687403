// internal/entity/ecs.go
package entity

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Colliders   map[types.EntityID]*component.Collider
	Healths     map[types.EntityID]*component.Health
	Players     map[types.EntityID]*component.Player
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	Explosions  map[types.EntityID]*component.Explosion
	Wave        *component.Wave
	Formation   *component.Formation
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Colliders:   make(map[types.EntityID]*component.Collider),
		Healths:     make(map[types.EntityID]*component.Health),
		Players:     make(map[types.EntityID]*component.Player),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Wave:        nil,
		Formation:   nil,
		GameState: &component.GameState{
			Phase: component.PhasePlaying,
			Lives: config.InitialLives,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity clears every component associated with the entity.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Colliders, id)
	delete(ecs.Healths, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Explosions, id)
}
