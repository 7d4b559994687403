// internal/system/render.go
package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-galaga/internal/assets"
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/entity"
	"go-galaga/pkg/tile"
)

// RenderSystem draws the shader-tiled background and all entities.
type RenderSystem struct {
	ecs      *entity.ECS
	shader   *ebiten.Shader
	textures *assets.TextureManager
}

func NewRenderSystem(ecs *entity.ECS, textures *assets.TextureManager) *RenderSystem {
	shader, err := assets.NewBackgroundShader()
	if err != nil {
		// Fall back to a flat fill; the game is still playable.
		log.Printf("background shader unavailable: %v", err)
		shader = nil
	}
	return &RenderSystem{ecs: ecs, shader: shader, textures: textures}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	s.drawBackground(screen)

	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		// Spawn protection blinks the ship.
		if player, isPlayer := s.ecs.Players[id]; isPlayer {
			if player.InvulnTimer > 0 && tile.Fract(gameTime*8) < 0.5 {
				continue
			}
			s.drawShip(screen, pos, render)
			continue
		}

		switch render.Shape {
		case component.ShapeCircle:
			radius := render.Width / 2
			if render.HasStroke {
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius+2, config.PlayerStrokeColor, true)
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, render.Color, true)
		case component.ShapeRect:
			vector.DrawFilledRect(screen,
				float32(pos.X)-render.Width/2, float32(pos.Y)-render.Height/2,
				render.Width, render.Height, render.Color, true)
		case component.ShapeShip:
			s.drawShip(screen, pos, render)
		}
	}
}

// drawBackground repeats the star tile across the screen via the Kage
// shader. The quad's source coordinates cover the tile exactly once, so
// the shader sees a normalized UV and applies the grid factors itself.
func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	if s.shader == nil {
		screen.Fill(config.BackgroundColor)
		return
	}

	tileImg := s.textures.BackgroundTile()
	tw := float32(config.TileSize)
	th := float32(config.TileSize)
	w := float32(config.ScreenWidth)
	h := float32(config.ScreenHeight)

	vertices := []ebiten.Vertex{
		{DstX: 0, DstY: 0, SrcX: 0, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: w, DstY: 0, SrcX: tw, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: 0, DstY: h, SrcX: 0, SrcY: th, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: w, DstY: h, SrcX: tw, SrcY: th, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	indices := []uint16{0, 1, 2, 1, 2, 3}

	opts := &ebiten.DrawTrianglesShaderOptions{}
	opts.Images[0] = tileImg
	opts.Uniforms = map[string]any{
		"Tint": config.BackgroundTint[:],
	}
	screen.DrawTrianglesShader(vertices, indices, s.shader, opts)
}

// drawShip renders the player: hull, cannon, and two wing fins.
func (s *RenderSystem) drawShip(screen *ebiten.Image, pos *component.Position, render *component.Renderable) {
	x := float32(pos.X)
	y := float32(pos.Y)
	w := render.Width
	h := render.Height

	// Hull
	vector.DrawFilledRect(screen, x-w/4, y-h/2, w/2, h, render.Color, true)
	// Cannon
	vector.DrawFilledRect(screen, x-2, y-h/2-6, 4, 6, config.PlayerStrokeColor, true)
	// Wings
	vector.DrawFilledRect(screen, x-w/2, y, w/4, h/2, render.Color, true)
	vector.DrawFilledRect(screen, x+w/4, y, w/4, h/2, render.Color, true)
}
