// internal/component/collider.go
package component

// Collider defines an axis-aligned bounding box for collision checks.
// The box is centered on the entity's position plus the offset.
type Collider struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}
