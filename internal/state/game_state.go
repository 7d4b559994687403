// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-galaga/internal/app"
	"go-galaga/internal/audio"
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/system"
	"go-galaga/internal/ui"
)

// GameState runs one play session.
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	sound       *audio.SoundManager
	hud         *ui.HUD
	pauseButton *ui.PauseButton
}

func NewGameState(sm *StateMachine, sound *audio.SoundManager) *GameState {
	return &GameState{
		sm:    sm,
		game:  app.NewGame(sound),
		sound: sound,
		hud:   ui.NewHUD(),
		pauseButton: ui.NewPauseButton(
			config.PauseButtonX,
			config.PauseButtonY,
			config.PauseButtonSize,
			config.PauseColor,
			config.PlayColor,
		),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	in := system.PollInput()

	if in.Pause {
		g.pause()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.IsClicked(float32(x), float32(y)) &&
			time.Since(g.pauseButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.pause()
			return
		}
	}

	g.game.Update(deltaTime, in)

	if g.game.ECS.GameState.Phase == component.PhaseGameOver {
		gs := g.game.ECS.GameState
		g.sm.SetState(NewGameOverState(g.sm, g.sound, gs.Score, gs.Wave))
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.hud.Draw(screen, g.game.ECS.GameState)
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
