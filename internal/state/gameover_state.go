// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-galaga/internal/audio"
	"go-galaga/internal/config"
)

// GameOverState shows the final tally and returns to the menu.
type GameOverState struct {
	sm    *StateMachine
	sound *audio.SoundManager
	score int
	wave  int
	face  font.Face
}

func NewGameOverState(sm *StateMachine, sound *audio.SoundManager, score, wave int) *GameOverState {
	return &GameOverState{sm: sm, sound: sound, score: score, wave: wave, face: basicfont.Face7x13}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewMenuState(s.sm, s.sound))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	centerX := config.ScreenWidth / 2
	text.Draw(screen, "GAME OVER", s.face, centerX-31, config.ScreenHeight/3, config.EnemyProjectileColor)
	text.Draw(screen, fmt.Sprintf("FINAL SCORE %06d", s.score), s.face, centerX-63, config.ScreenHeight/2, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("REACHED WAVE %d", s.wave), s.face, centerX-49, config.ScreenHeight/2+20, config.TextLightColor)
	text.Draw(screen, "PRESS SPACE", s.face, centerX-38, config.ScreenHeight/2+60, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
