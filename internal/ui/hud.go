// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-galaga/internal/component"
	"go-galaga/internal/config"
)

// HUD draws the score, wave counter, and remaining lives.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image, gs *component.GameState) {
	text.Draw(screen, fmt.Sprintf("SCORE %06d", gs.Score), h.face, 16, 22, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("WAVE %d", gs.Wave), h.face, config.ScreenWidth/2-24, 22, config.TextLightColor)

	// One small ship glyph per remaining life, bottom-left.
	for i := 0; i < gs.Lives; i++ {
		x := float32(16 + i*22)
		y := float32(config.ScreenHeight - 20)
		vector.DrawFilledRect(screen, x, y, 12, 8, config.PlayerColor, true)
		vector.DrawFilledRect(screen, x+4, y-4, 4, 4, config.PlayerColor, true)
	}
}
