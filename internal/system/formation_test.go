// internal/system/formation_test.go
package system

import (
	"testing"

	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/types"
	"go-galaga/internal/utils"
)

func addFormationEnemy(ecs *entity.ECS, x, y, fireTimer float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Colliders[id] = &component.Collider{Width: 32, Height: 24}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_DRONE", FireTimer: fireTimer}
	return id
}

func TestFormationReversesAndStepsDownAtRightEdge(t *testing.T) {
	ecs := entity.NewECS()
	ecs.Formation = &component.Formation{Dir: 1, Speed: 100, StepDown: config.FormationStepDown}
	id := addFormationEnemy(ecs, config.ScreenWidth-config.WorldPadding-17, 100, 999)

	fs := NewFormationSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))
	fs.Update(0.016)

	if ecs.Formation.Dir != -1 {
		t.Errorf("formation direction = %v, want -1 after hitting the right edge", ecs.Formation.Dir)
	}
	if got := ecs.Positions[id].Y; got != 100+config.FormationStepDown {
		t.Errorf("enemy Y = %v, want %v after the step down", got, 100+config.FormationStepDown)
	}
}

func TestFormationReversesAtLeftEdge(t *testing.T) {
	ecs := entity.NewECS()
	ecs.Formation = &component.Formation{Dir: -1, Speed: 100, StepDown: config.FormationStepDown}
	addFormationEnemy(ecs, config.WorldPadding+17, 100, 999)

	fs := NewFormationSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))
	fs.Update(0.016)

	if ecs.Formation.Dir != 1 {
		t.Errorf("formation direction = %v, want 1 after hitting the left edge", ecs.Formation.Dir)
	}
}

func TestFormationDriftsWithoutEdgeContact(t *testing.T) {
	ecs := entity.NewECS()
	ecs.Formation = &component.Formation{Dir: 1, Speed: 100, StepDown: config.FormationStepDown}
	id := addFormationEnemy(ecs, 300, 100, 999)

	fs := NewFormationSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))
	fs.Update(0.016)

	want := 300 + 100*0.016
	if got := ecs.Positions[id].X; got != want {
		t.Errorf("enemy X = %v, want %v", got, want)
	}
	if got := ecs.Positions[id].Y; got != 100 {
		t.Errorf("enemy Y = %v, want unchanged 100", got)
	}
}

func TestInvasionDispatchesGameOver(t *testing.T) {
	ecs := entity.NewECS()
	ecs.Formation = &component.Formation{Dir: 1, Speed: 1, StepDown: config.FormationStepDown}
	addFormationEnemy(ecs, 300, config.InvasionY+1, 999)

	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.GameOver, rec)

	fs := NewFormationSystem(ecs, dispatcher, utils.NewPRNGService(1))
	fs.Update(0.016)

	if rec.count(event.GameOver) != 1 {
		t.Errorf("got %d GameOver events, want 1", rec.count(event.GameOver))
	}
}

func TestEnemyFiresDownwardWhenTimerExpires(t *testing.T) {
	ecs := entity.NewECS()
	ecs.Formation = &component.Formation{Dir: 1, Speed: 1, StepDown: config.FormationStepDown}
	addFormationEnemy(ecs, 300, 100, 0.001)

	fs := NewFormationSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))
	fs.Update(0.016)

	if len(ecs.Projectiles) != 1 {
		t.Fatalf("got %d projectiles, want 1", len(ecs.Projectiles))
	}
	for id, proj := range ecs.Projectiles {
		if proj.FromPlayer {
			t.Error("enemy shot must not be owned by the player")
		}
		if vel := ecs.Velocities[id]; vel == nil || vel.Y <= 0 {
			t.Errorf("enemy shot should move downward, velocity = %+v", vel)
		}
	}

	// The fire timer must be re-armed to a positive delay.
	for _, enemy := range ecs.Enemies {
		if enemy.FireTimer < config.EnemyFireMinDelay {
			t.Errorf("fire timer re-armed to %v, want at least %v", enemy.FireTimer, config.EnemyFireMinDelay)
		}
	}
}
