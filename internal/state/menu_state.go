// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-galaga/internal/audio"
	"go-galaga/internal/config"
)

// MenuState — the title screen.
type MenuState struct {
	sm    *StateMachine
	sound *audio.SoundManager
	face  font.Face
	timer float64
}

func NewMenuState(sm *StateMachine, sound *audio.SoundManager) *MenuState {
	return &MenuState{sm: sm, sound: sound, face: basicfont.Face7x13}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.timer += deltaTime
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.sound))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	centerX := config.ScreenWidth / 2
	text.Draw(screen, "G O   G A L A G A", m.face, centerX-60, config.ScreenHeight/3, config.PlayerColor)

	// Blinking start prompt.
	if int(m.timer*2)%2 == 0 {
		text.Draw(screen, "PRESS SPACE TO START", m.face, centerX-70, config.ScreenHeight/2, config.TextLightColor)
	}
	text.Draw(screen, "ARROWS/AD MOVE   SPACE FIRE   Q QUIT", m.face, centerX-126, config.ScreenHeight/2+40, config.TextLightColor)
}

func (m *MenuState) Exit() {}
