// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-galaga/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the previous state and dims it.
type PauseState struct {
	sm            *StateMachine
	previousState *GameState
	face          font.Face
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, previousState: prev, face: basicfont.Face7x13}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.previousState.pauseButton.SetPaused(false)
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	// The frozen game stays visible behind the overlay.
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	text.Draw(screen, "PAUSED", s.face, config.ScreenWidth/2-21, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
