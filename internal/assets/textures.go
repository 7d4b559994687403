// internal/assets/textures.go
package assets

import (
	"go-galaga/internal/config"
	"go-galaga/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextureManager builds and caches the procedural textures used by the
// render system. Everything is generated at startup; there are no asset
// files to load.
type TextureManager struct {
	backgroundTile *ebiten.Image
}

func NewTextureManager() *TextureManager {
	return &TextureManager{}
}

// BackgroundTile returns the single starfield tile that the background
// shader repeats across the screen. Built lazily, cached afterwards.
func (m *TextureManager) BackgroundTile() *ebiten.Image {
	if m.backgroundTile != nil {
		return m.backgroundTile
	}

	img := ebiten.NewImage(config.TileSize, config.TileSize)
	img.Fill(config.BackgroundColor)

	// Fixed seed so every tile (and every run) looks the same.
	rng := utils.NewPRNGService(7)
	for i := 0; i < 14; i++ {
		x := float32(rng.Intn(config.TileSize))
		y := float32(rng.Intn(config.TileSize))
		r := float32(0.5 + rng.Float64()*1.2)
		c := config.StarColor
		c.A = uint8(90 + rng.Intn(160))
		vector.DrawFilledCircle(img, x, y, r, c, true)
	}

	m.backgroundTile = img
	return m.backgroundTile
}
