// internal/system/score.go
package system

import (
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
)

// ScoreSystem is a pure event listener: it accumulates score, spends
// lives, and flips the run into game over.
type ScoreSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewScoreSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ScoreSystem {
	ss := &ScoreSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ss)
	eventDispatcher.Subscribe(event.PlayerHit, ss)
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *ScoreSystem) OnEvent(e event.Event) {
	gs := s.ecs.GameState
	switch e.Type {
	case event.EnemyDestroyed:
		if points, ok := e.Data.(int); ok {
			gs.Score += points
		}
	case event.PlayerHit:
		gs.Lives--
		if gs.Lives <= 0 {
			gs.Phase = component.PhaseGameOver
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
			return
		}
		s.respawnPlayer()
	case event.GameOver:
		gs.Phase = component.PhaseGameOver
	}
}

// respawnPlayer recenters the ship and grants spawn protection.
func (s *ScoreSystem) respawnPlayer() {
	for id, player := range s.ecs.Players {
		if pos := s.ecs.Positions[id]; pos != nil {
			pos.X = config.ScreenWidth / 2
			pos.Y = config.PlayerY
		}
		player.InvulnTimer = config.RespawnInvulnTime
		player.FireCooldown = 0
	}
}
