// internal/component/render.go
package component

import "image/color"

// ShapeKind selects how the render system draws an entity.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
	ShapeShip
)

// Renderable — component for drawing an entity with vector primitives.
type Renderable struct {
	Color     color.RGBA
	Width     float32
	Height    float32
	Shape     ShapeKind
	HasStroke bool
}
