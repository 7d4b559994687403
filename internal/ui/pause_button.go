// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton is a clickable pause/play toggle in the screen corner.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	// Brief pop animation after a click.
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Three shrinking bars approximating a play triangle.
		c := b.PlayColor
		vector.DrawFilledRect(screen, b.X-size, b.Y-size, size*0.6, size*2, c, true)
		vector.DrawFilledRect(screen, b.X-size*0.3, b.Y-size*0.6, size*0.6, size*1.2, c, true)
		vector.DrawFilledRect(screen, b.X+size*0.4, b.Y-size*0.25, size*0.5, size*0.5, c, true)
	} else {
		// Two bars.
		c := b.PauseColor
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, c, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, c, true)
	}
}

// IsClicked reports whether the point falls inside the button's circle.
func (b *PauseButton) IsClicked(mx, my float32) bool {
	dx := mx - b.X
	dy := my - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
