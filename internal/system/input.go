// internal/system/input.go
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is the per-frame snapshot of the controls. Systems consume
// this struct instead of polling the keyboard, which keeps them testable.
type InputState struct {
	Left  bool
	Right bool
	Fire  bool
	Pause bool
}

// PollInput reads the keyboard into an InputState.
func PollInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9),
	}
}
