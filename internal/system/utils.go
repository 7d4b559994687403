// internal/system/utils.go
package system

import (
	"math"

	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
)

// aabbOverlap reports whether two centered bounding boxes intersect.
func aabbOverlap(p1 *component.Position, c1 *component.Collider, p2 *component.Position, c2 *component.Collider) bool {
	if p1 == nil || c1 == nil || p2 == nil || c2 == nil {
		return false
	}
	ax := p1.X + c1.OffsetX
	ay := p1.Y + c1.OffsetY
	bx := p2.X + c2.OffsetX
	by := p2.Y + c2.OffsetY
	return math.Abs(ax-bx)*2 < c1.Width+c2.Width &&
		math.Abs(ay-by)*2 < c1.Height+c2.Height
}

// spawnExplosion creates a short-lived expanding ring at the position.
func spawnExplosion(ecs *entity.ECS, at *component.Position) {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Renderables[id] = &component.Renderable{
		Color: config.ExplosionColor,
		Shape: component.ShapeCircle,
	}
	ecs.Explosions[id] = &component.Explosion{
		Duration:  config.ExplosionDuration,
		MaxRadius: config.ExplosionMaxRadius,
	}
}
