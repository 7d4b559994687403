// internal/component/explosion.go
package component

// Explosion is a short-lived visual effect at a destroyed entity's position.
type Explosion struct {
	Timer     float64
	Duration  float64
	MaxRadius float32
}
