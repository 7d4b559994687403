// internal/app/game.go
package app

import (
	"go-galaga/internal/assets"
	"go-galaga/internal/audio"
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"go-galaga/internal/system"
	"go-galaga/internal/types"
	"go-galaga/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game holds the ECS, all gameplay systems, and the per-frame
// orchestration for one run.
type Game struct {
	ECS              *entity.ECS
	PlayerSystem     *system.PlayerSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	FormationSystem  *system.FormationSystem
	CollisionSystem  *system.CollisionSystem
	LifetimeSystem   *system.LifetimeSystem
	ScoreSystem      *system.ScoreSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	PlayerID         types.EntityID

	gameTime  float64
	waveBreak float64
}

// NewGame initializes a run. The sound manager may be nil (silent mode).
func NewGame(sound *audio.SoundManager) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(0)

	g := &Game{
		ECS:              ecs,
		MovementSystem:   system.NewMovementSystem(ecs),
		ProjectileSystem: system.NewProjectileSystem(ecs),
		LifetimeSystem:   system.NewLifetimeSystem(ecs),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, rng)
	g.FormationSystem = system.NewFormationSystem(ecs, eventDispatcher, rng)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher)
	g.ScoreSystem = system.NewScoreSystem(ecs, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs, assets.NewTextureManager())

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveCleared, listener)

	if sound != nil {
		eventDispatcher.Subscribe(event.ProjectileFired, sound)
		eventDispatcher.Subscribe(event.EnemyDestroyed, sound)
		eventDispatcher.Subscribe(event.PlayerHit, sound)
		eventDispatcher.Subscribe(event.WaveCleared, sound)
		eventDispatcher.Subscribe(event.GameOver, sound)
	}

	g.createPlayerEntity()
	g.ECS.Wave = g.WaveSystem.StartWave(1)

	return g
}

// Update advances one frame of gameplay.
func (g *Game) Update(deltaTime float64, in system.InputState) {
	if g.ECS.GameState.Phase != component.PhasePlaying {
		return
	}
	g.gameTime += deltaTime

	g.PlayerSystem.Update(deltaTime, in)
	g.FormationSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	g.LifetimeSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)

	// Between waves: wait out the break, then send the next one.
	if g.ECS.Wave == nil {
		g.waveBreak -= deltaTime
		if g.waveBreak <= 0 {
			g.ECS.Wave = g.WaveSystem.StartWave(g.ECS.GameState.Wave + 1)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen, g.gameTime)
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

func (g *Game) createPlayerEntity() {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: config.ScreenWidth / 2, Y: config.PlayerY}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.PlayerColor,
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Shape:  component.ShapeShip,
	}
	g.ECS.Colliders[id] = &component.Collider{
		Width:  config.PlayerWidth * 0.8,
		Height: config.PlayerHeight * 0.8,
	}
	g.ECS.Players[id] = &component.Player{}
	g.PlayerID = id
}

// GameEventListener handles the run-level events that belong to the Game
// itself rather than to any single system.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type == event.WaveCleared {
		l.game.ECS.Wave = nil
		l.game.waveBreak = config.WaveBreakDuration
	}
}
