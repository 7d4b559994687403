// internal/system/formation.go
package system

import (
	"math"

	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/utils"
)

// FormationSystem drifts the enemy grid sideways, reverses it at the
// world edges with a step down, and lets enemies take randomized shots.
// An enemy reaching the invasion line ends the game.
type FormationSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewFormationSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *FormationSystem {
	return &FormationSystem{ecs: ecs, eventDispatcher: eventDispatcher, rng: rng}
}

func (s *FormationSystem) Update(deltaTime float64) {
	f := s.ecs.Formation
	if f == nil || len(s.ecs.Enemies) == 0 {
		return
	}

	dx := f.Dir * f.Speed * deltaTime
	minX := math.Inf(1)
	maxX := math.Inf(-1)
	lowest := math.Inf(-1)

	for id := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		pos.X += dx

		halfW := 0.0
		if col, ok := s.ecs.Colliders[id]; ok {
			halfW = col.Width / 2
		}
		minX = math.Min(minX, pos.X-halfW)
		maxX = math.Max(maxX, pos.X+halfW)
		lowest = math.Max(lowest, pos.Y)
	}

	hitRight := f.Dir > 0 && maxX >= config.ScreenWidth-config.WorldPadding
	hitLeft := f.Dir < 0 && minX <= config.WorldPadding
	if hitRight || hitLeft {
		f.Dir = -f.Dir
		for id := range s.ecs.Enemies {
			if pos := s.ecs.Positions[id]; pos != nil {
				pos.Y += f.StepDown
			}
		}
		lowest += f.StepDown
	}

	if lowest >= config.InvasionY {
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		return
	}

	s.updateEnemyFire(deltaTime)
}

// updateEnemyFire ticks each enemy's fire timer and spawns a downward
// shot when it expires.
func (s *FormationSystem) updateEnemyFire(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		enemy.FireTimer -= deltaTime
		if enemy.FireTimer > 0 {
			continue
		}
		enemy.FireTimer = s.rng.FloatRange(config.EnemyFireMinDelay, config.EnemyFireMaxDelay)

		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		s.spawnEnemyShot(pos)
	}
}

func (s *FormationSystem) spawnEnemyShot(enemyPos *component.Position) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: enemyPos.X, Y: enemyPos.Y + config.ProjectileHeight}
	s.ecs.Velocities[id] = &component.Velocity{X: 0, Y: config.EnemyProjectileSpeed}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.EnemyProjectileColor,
		Width:  config.ProjectileWidth,
		Height: config.ProjectileHeight,
		Shape:  component.ShapeRect,
	}
	s.ecs.Colliders[id] = &component.Collider{
		Width:  config.ProjectileWidth,
		Height: config.ProjectileHeight,
	}
	s.ecs.Projectiles[id] = &component.Projectile{
		FromPlayer: false,
		Damage:     1,
	}
}
