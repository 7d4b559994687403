package component

// GamePhase — component for the overall run state.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)

// GameState holds the run-wide counters shared by systems and the HUD.
type GameState struct {
	Phase GamePhase
	Score int
	Lives int
	Wave  int
}
