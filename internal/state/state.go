// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is implemented by every screen of the game.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine owns the active state and handles transitions.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state (if any) and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
