// internal/component/formation.go
package component

// Formation drives the enemy grid as a single drifting unit.
type Formation struct {
	Dir      float64 // +1 moving right, -1 moving left
	Speed    float64 // pixels per second
	StepDown float64 // vertical step applied on edge reversal
}
