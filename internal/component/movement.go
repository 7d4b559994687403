// internal/component/movement.go
package component

// Position — world-space position in pixels, centered on the entity.
type Position struct {
	X, Y float64
}

// Velocity — velocity vector in pixels per second.
type Velocity struct {
	X, Y float64
}
