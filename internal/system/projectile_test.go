// internal/system/projectile_test.go
package system

import (
	"testing"

	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
)

func TestProjectileDespawnsOutsideVisibleBounds(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		wantLive bool
	}{
		{"Above the screen", -config.ProjectileHeight - 1, false},
		{"Below the screen", config.ScreenHeight + config.ProjectileHeight + 1, false},
		{"Visible", config.ScreenHeight / 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			id := ecs.NewEntity()
			ecs.Positions[id] = &component.Position{X: 100, Y: tt.y}
			ecs.Projectiles[id] = &component.Projectile{FromPlayer: true}

			NewProjectileSystem(ecs).Update(0.016)

			_, alive := ecs.Projectiles[id]
			if alive != tt.wantLive {
				t.Errorf("alive = %v, want %v", alive, tt.wantLive)
			}
		})
	}
}
